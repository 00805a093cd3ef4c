package update_tenant_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/api/middleware"
	"github.com/agendahub/TenantBookingService/internal/service/tenants"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgAccessDenied       = "недостаточно прав для изменения конфигурации"
	msgTenantNotFound     = "тенант не найден"
	msgInvalidInput       = "некорректные данные конфигурации"
)

type Handler struct {
	service TenantService
	logger  Logger
}

func NewHandler(service TenantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/tenants/{slug}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["slug"]

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tenants/{slug}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateConfig(r.Context(), principal, tenantSlug, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrAccessDenied):
			h.logger.Warn("PUT /tenants/{slug}/config - Access denied: tenant=%s, principal=%d",
				tenantSlug, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, tenants.ErrTenantNotFound):
			h.logger.Warn("PUT /tenants/{slug}/config - Tenant not found: tenant=%s", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, tenants.ErrInvalidInput):
			h.logger.Warn("PUT /tenants/{slug}/config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /tenants/{slug}/config - Failed to update config: tenant=%s, error=%v",
				tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tenants/{slug}/config - Config updated successfully: tenant=%s", tenantSlug)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
