package create_team_member

import (
	"context"

	"github.com/agendahub/TenantBookingService/internal/domain"
	teamModels "github.com/agendahub/TenantBookingService/internal/service/team/models"
)

type TeamService interface {
	CreateMember(ctx context.Context, principal domain.Principal, tenantSlug string, req *teamModels.CreateMemberRequest) (*teamModels.MemberView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
