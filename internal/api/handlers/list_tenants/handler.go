package list_tenants

import (
	"net/http"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	tenantModels "github.com/agendahub/TenantBookingService/internal/service/tenants/models"
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

// ListTenantsResponse HTTP response model
type ListTenantsResponse struct {
	Tenants []*tenantModels.TenantSummary `json:"tenants"`
}

// Handle GET /api/v1/tenants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /tenants - Failed to list tenants: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants - Listed %d tenants", len(summaries))
	handlers.RespondJSON(w, http.StatusOK, &ListTenantsResponse{Tenants: summaries})
}
