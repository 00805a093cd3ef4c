package domain

import (
	"time"

	"github.com/agendahub/TenantBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer reservation of a single time slot
type Booking struct {
	ID            int64
	TenantSlug    string
	ServiceName   string
	CustomerName  string
	CustomerPhone string
	BookingDate   time.Time
	BookingTime   types.TimeString
	Status        BookingStatus
	CreatedAt     time.Time
}

// IsActive returns true if the booking occupies its slot
// Только отменённые бронирования освобождают слот
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if no further status transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanTransitionTo проверяет допустимость перехода статуса
// Разрешены только confirmed -> cancelled и confirmed -> completed
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	return next == StatusCancelled || next == StatusCompleted
}

// ParseBookingStatus валидирует строковое представление статуса
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), true
	default:
		return "", false
	}
}
