package create_booking

import (
	"time"

	"github.com/agendahub/TenantBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// Все поля обязательны; формат имени и телефона не ограничивается
type Request struct {
	TenantSlug    string           // Slug тенанта
	ServiceName   string           // Название услуги (по имени, не по внешнему ключу)
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	Date          time.Time        // Дата бронирования (без времени)
	Time          types.TimeString // Метка слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	TenantSlug    string           // Slug тенанта
	ServiceName   string           // Название услуги
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	Date          time.Time        // Дата бронирования
	Time          types.TimeString // Метка слота
	Status        string           // Статус (всегда confirmed при создании)
	CreatedAt     time.Time        // Время создания
}
