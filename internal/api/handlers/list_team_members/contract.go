package list_team_members

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
	teamModels "github.com/agendahub/TenantBookingService/internal/service/team/models"
)

type TeamService interface {
	ListMembers(ctx context.Context, principal domain.Principal, tenantSlug string) ([]*teamModels.MemberView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
