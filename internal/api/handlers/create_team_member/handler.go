package create_team_member

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/api/middleware"
	"github.com/agendahub/TenantBookingService/internal/service/team"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgAccessDenied       = "только владелец может управлять командой"
	msgEmailInUse         = "email уже занят"
	msgInvalidInput       = "некорректные данные сотрудника"
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

// Handle POST /api/v1/tenants/{slug}/team-members
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["slug"]

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{slug}/team-members - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	member, err := h.service.CreateMember(r.Context(), principal, tenantSlug, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, team.ErrAccessDenied):
			h.logger.Warn("POST /tenants/{slug}/team-members - Access denied: tenant=%s, principal=%d",
				tenantSlug, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, team.ErrEmailInUse):
			h.logger.Warn("POST /tenants/{slug}/team-members - Email in use: tenant=%s, email=%s",
				tenantSlug, req.Email)
			handlers.RespondConflict(w, msgEmailInUse)

		case errors.Is(err, team.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{slug}/team-members - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tenants/{slug}/team-members - Failed to create member: tenant=%s, error=%v",
				tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/{slug}/team-members - Member created successfully: id=%d, tenant=%s",
		member.ID, tenantSlug)
	handlers.RespondJSON(w, http.StatusCreated, member)
}
