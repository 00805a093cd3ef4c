package get_available_slots

import (
	"time"

	"github.com/agendahub/TenantBookingService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	TenantSlug string    // Slug тенанта
	Date       time.Time // Дата без времени
}

// Response модель ответа со списком свободных слотов
//
// Результат - снимок на момент чтения, а не резервация: между чтением
// и созданием бронирования слот может быть занят другим клиентом.
// Авторитетное решение принимает создание бронирования
type Response struct {
	TenantSlug string             // Slug тенанта
	Date       time.Time          // Дата, на которую запрашивались слоты
	FreeSlots  []types.TimeString // Свободные временные метки
}
