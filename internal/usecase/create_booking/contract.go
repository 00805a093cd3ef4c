package create_booking

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает бронирование; обязан быть атомарным относительно
	// инварианта (tenant, date, time) среди неотменённых строк
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// Metrics интерфейс доменных счётчиков
type Metrics interface {
	IncBookingCreated()
	IncSlotConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NoopMetrics заглушка счётчиков, когда метрики выключены
type NoopMetrics struct{}

func (NoopMetrics) IncBookingCreated() {}
func (NoopMetrics) IncSlotConflict()   {}
