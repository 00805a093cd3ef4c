package create_tenant

import (
	"errors"
	"net/http"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/service/tenants"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTenantExists       = "slug или email уже заняты"
	msgInvalidInput       = "не заполнены обязательные поля регистрации"
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

// Handle POST /api/v1/tenants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tenant, err := h.service.Signup(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrTenantExists):
			h.logger.Warn("POST /tenants - Tenant already exists: slug=%s", req.Slug)
			handlers.RespondConflict(w, msgTenantExists)

		case errors.Is(err, tenants.ErrInvalidInput):
			h.logger.Warn("POST /tenants - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tenants - Failed to create tenant: slug=%s, error=%v", req.Slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants - Tenant created successfully: id=%d, slug=%s", tenant.ID, tenant.Slug)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainTenant(tenant))
}
