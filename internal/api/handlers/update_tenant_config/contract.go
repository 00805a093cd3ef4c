package update_tenant_config

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantModels "github.com/agendahub/TenantBookingService/internal/service/tenants/models"
)

type TenantService interface {
	UpdateConfig(ctx context.Context, principal domain.Principal, slug string, req *tenantModels.UpdateConfigRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
