package get_tenant_stats

import (
	"context"

	getTenantStats "github.com/agendahub/TenantBookingService/internal/usecase/get_tenant_stats"
)

type GetTenantStatsUseCase interface {
	Execute(ctx context.Context, req *getTenantStats.Request) (*getTenantStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
