package get_tenant_config

import (
	"context"

	tenantModels "github.com/agendahub/TenantBookingService/internal/service/tenants/models"
)

type TenantService interface {
	GetConfig(ctx context.Context, slug string) (*tenantModels.TenantConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
