package delete_team_member

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

type TeamService interface {
	DeleteMember(ctx context.Context, principal domain.Principal, tenantSlug string, memberID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
