package list_team_members

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/api/middleware"
	"github.com/agendahub/TenantBookingService/internal/service/team"
	teamModels "github.com/agendahub/TenantBookingService/internal/service/team/models"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgAccessDenied = "нет доступа к команде этого тенанта"
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

// MembersResponse HTTP response model
type MembersResponse struct {
	Members []*teamModels.MemberView `json:"members"`
}

// Handle GET /api/v1/tenants/{slug}/team-members
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["slug"]

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	members, err := h.service.ListMembers(r.Context(), principal, tenantSlug)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrAccessDenied):
			h.logger.Warn("GET /tenants/{slug}/team-members - Access denied: tenant=%s, principal=%d",
				tenantSlug, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /tenants/{slug}/team-members - Failed to list members: tenant=%s, error=%v",
				tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{slug}/team-members - Listed %d members: tenant=%s", len(members), tenantSlug)
	handlers.RespondJSON(w, http.StatusOK, &MembersResponse{Members: members})
}
