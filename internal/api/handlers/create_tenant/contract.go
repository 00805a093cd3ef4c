package create_tenant

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantModels "github.com/agendahub/TenantBookingService/internal/service/tenants/models"
)

type TenantService interface {
	Signup(ctx context.Context, req *tenantModels.SignupRequest) (*domain.Tenant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
