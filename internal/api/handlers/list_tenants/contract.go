package list_tenants

import (
	"context"

	tenantModels "github.com/agendahub/TenantBookingService/internal/service/tenants/models"
)

type TenantService interface {
	List(ctx context.Context) ([]*tenantModels.TenantSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
