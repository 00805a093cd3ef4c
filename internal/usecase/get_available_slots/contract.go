package get_available_slots

import (
	"context"
	"time"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListActiveByTenantAndDate получает неотменённые бронирования
	// тенанта на конкретную дату
	ListActiveByTenantAndDate(ctx context.Context, tenantSlug string, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
