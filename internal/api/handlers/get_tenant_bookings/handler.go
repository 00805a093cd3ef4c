package get_tenant_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/api/middleware"
	"github.com/agendahub/TenantBookingService/internal/service/bookings"
	bookingModels "github.com/agendahub/TenantBookingService/internal/service/bookings/models"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgAccessDenied = "нет доступа к агенде этого тенанта"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []*bookingModels.BookingView `json:"bookings"`
}

// Handle GET /api/v1/tenants/{slug}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["slug"]

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	views, err := h.service.ListTenantBookings(r.Context(), principal, tenantSlug)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /tenants/{slug}/bookings - Access denied: tenant=%s, principal=%d",
				tenantSlug, principal.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /tenants/{slug}/bookings - Failed to list bookings: tenant=%s, error=%v",
				tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{slug}/bookings - Listed %d bookings: tenant=%s", len(views), tenantSlug)
	handlers.RespondJSON(w, http.StatusOK, &BookingsResponse{Bookings: views})
}
