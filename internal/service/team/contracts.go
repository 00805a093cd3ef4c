package team

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

// TeamRepository интерфейс репозитория сотрудников
type TeamRepository interface {
	Create(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
	ListByTenant(ctx context.Context, tenantSlug string) ([]*domain.TeamMember, error)
	Delete(ctx context.Context, id int64, tenantSlug string) error
}

// TenantRepository интерфейс репозитория тенантов
// Нужен для глобальной проверки уникальности email:
// email сотрудника не должен совпадать с email какого-либо тенанта
type TenantRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)
}

// PasswordHasher интерфейс для хеширования паролей
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
