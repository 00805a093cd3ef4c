package delete_team_member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/api/middleware"
	"github.com/agendahub/TenantBookingService/internal/service/team"
)

const (
	msgInvalidMemberID = "некорректный ID сотрудника"
	msgUnauthorized    = "требуется аутентификация"
	msgAccessDenied    = "только владелец может управлять командой"
	msgMemberNotFound  = "сотрудник не найден"
)

type Handler struct {
	service TeamService
	logger  Logger
}

func NewHandler(service TeamService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/tenants/{slug}/team-members/{memberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantSlug := vars["slug"]

	memberID, err := strconv.ParseInt(vars["memberId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tenants/{slug}/team-members/{id} - Invalid member ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	err = h.service.DeleteMember(r.Context(), principal, tenantSlug, memberID)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrAccessDenied):
			h.logger.Warn("DELETE /tenants/{slug}/team-members/{id} - Access denied: tenant=%s, principal=%d",
				tenantSlug, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, team.ErrMemberNotFound):
			h.logger.Warn("DELETE /tenants/{slug}/team-members/{id} - Member not found: tenant=%s, member_id=%d",
				tenantSlug, memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("DELETE /tenants/{slug}/team-members/{id} - Failed to delete member: tenant=%s, member_id=%d, error=%v",
				tenantSlug, memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tenants/{slug}/team-members/{id} - Member deleted successfully: tenant=%s, member_id=%d",
		tenantSlug, memberID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
