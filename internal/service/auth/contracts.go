package auth

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)
}

// TeamRepository интерфейс репозитория сотрудников
type TeamRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.TeamMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
