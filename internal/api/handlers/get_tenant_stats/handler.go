package get_tenant_stats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/api/middleware"
	getTenantStats "github.com/agendahub/TenantBookingService/internal/usecase/get_tenant_stats"
)

const (
	msgUnauthorized   = "требуется аутентификация"
	msgAccessDenied   = "нет доступа к статистике этого тенанта"
	msgTenantNotFound = "тенант не найден"
)

type Handler struct {
	useCase GetTenantStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetTenantStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{slug}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["slug"]

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTenantStats.Request{
		TenantSlug: tenantSlug,
		Principal:  principal,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTenantStats.ErrAccessDenied):
			h.logger.Warn("GET /tenants/{slug}/stats - Access denied: tenant=%s, principal=%d",
				tenantSlug, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, getTenantStats.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{slug}/stats - Tenant not found: tenant=%s", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /tenants/{slug}/stats - Failed to get stats: tenant=%s, error=%v",
				tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{slug}/stats - Stats retrieved successfully: tenant=%s", tenantSlug)
	handlers.RespondJSON(w, http.StatusOK, result)
}
