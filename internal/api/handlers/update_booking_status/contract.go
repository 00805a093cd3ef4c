package update_booking_status

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, principal domain.Principal, bookingID int64, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
