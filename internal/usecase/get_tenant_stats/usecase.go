package get_tenant_stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
)

// UseCase use case для получения агрегированной статистики тенанта
type UseCase struct {
	tenantRepo  TenantRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tenantRepo TenantRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		tenantRepo:  tenantRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения статистики
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTenantStats: tenant=%s, principal=%d", req.TenantSlug, req.Principal.ID)

	if req.TenantSlug == "" {
		return nil, fmt.Errorf("%w: tenant slug is required", ErrInvalidInput)
	}

	if !req.Principal.IsScopedTo(req.TenantSlug) || !req.Principal.CanViewAgenda() {
		uc.logger.Warn("GetTenantStats: access denied: principal tenant=%s, requested tenant=%s",
			req.Principal.TenantSlug, req.TenantSlug)
		return nil, ErrAccessDenied
	}

	tenant, err := uc.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetTenantStats: failed to get tenant=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListByTenant(ctx, req.TenantSlug)
	if err != nil {
		uc.logger.Error("GetTenantStats: failed to get bookings for tenant=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := aggregate(bookings, tenant.ServicePriceMap())

	uc.logger.Info("GetTenantStats: tenant=%s: total=%d, revenue=%s",
		req.TenantSlug, resp.TotalBookings, resp.Revenue)

	return resp, nil
}

// aggregate считает статусы и выручку по списку бронирований
//
// Бронирование с услугой, отсутствующей в текущем каталоге,
// даёт нулевой вклад в выручку, но учитывается в счётчиках
func aggregate(bookings []*domain.Booking, prices map[string]float64) *Response {
	resp := &Response{TotalBookings: len(bookings)}

	var revenue float64
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusConfirmed:
			resp.ConfirmedBookings++
		case domain.StatusCompleted:
			resp.CompletedBookings++
		case domain.StatusCancelled:
			resp.CancelledBookings++
		}

		if b.Status != domain.StatusCancelled {
			revenue += prices[b.ServiceName]
		}
	}

	resp.Revenue = fmt.Sprintf("%.2f", revenue)

	return resp
}
