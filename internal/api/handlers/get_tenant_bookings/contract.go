package get_tenant_bookings

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
	bookingModels "github.com/agendahub/TenantBookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListTenantBookings(ctx context.Context, principal domain.Principal, tenantSlug string) ([]*bookingModels.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
