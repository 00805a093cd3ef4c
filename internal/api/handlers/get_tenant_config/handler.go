package get_tenant_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/service/tenants"
)

const msgTenantNotFound = "тенант не найден"

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

// Handle GET /api/v1/tenants/{slug}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["slug"]

	config, err := h.service.GetConfig(r.Context(), tenantSlug)
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{slug}/config - Tenant not found: tenant=%s", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /tenants/{slug}/config - Failed to get config: tenant=%s, error=%v",
				tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{slug}/config - Config retrieved successfully: tenant=%s", tenantSlug)
	handlers.RespondJSON(w, http.StatusOK, config)
}
