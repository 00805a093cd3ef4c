package get_tenant_stats

import "github.com/agendahub/TenantBookingService/internal/domain"

// Request модель запроса статистики тенанта
type Request struct {
	TenantSlug string           // Slug тенанта
	Principal  domain.Principal // Аутентифицированный субъект
}

// Response агрегированная статистика по всем бронированиям тенанта
//
// Выручка - строка с двумя знаками после запятой ("150.00");
// учитываются только завершённые и подтверждённые бронирования,
// цена берется из текущего каталога на момент запроса
type Response struct {
	TotalBookings     int    `json:"total_bookings"`
	ConfirmedBookings int    `json:"confirmed_bookings"`
	CompletedBookings int    `json:"completed_bookings"`
	CancelledBookings int    `json:"cancelled_bookings"`
	Revenue           string `json:"revenue"`
}
