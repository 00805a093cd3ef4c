package models

import (
	"time"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

// BookingView представление бронирования для staff-агенды
type BookingView struct {
	ID            int64  `json:"id"`
	TenantSlug    string `json:"tenantSlug"`
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	BookingDate   string `json:"bookingDate"`
	BookingTime   string `json:"bookingTime"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// FromDomainBooking конвертирует доменную модель в представление
func FromDomainBooking(b *domain.Booking) *BookingView {
	return &BookingView{
		ID:            b.ID,
		TenantSlug:    b.TenantSlug,
		ServiceName:   b.ServiceName,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		BookingTime:   b.BookingTime.String(),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingView {
	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, FromDomainBooking(b))
	}
	return views
}
