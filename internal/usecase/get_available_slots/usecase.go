package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
)

// UseCase use case для получения свободных слотов тенанта на дату
//
// Результат - консультативный снимок; никакие слоты не резервируются.
// Устаревание между этим чтением и записью бронирования ожидаемо
// и разрешается на стороне создания бронирования (SlotConflict)
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

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%s, date=%s",
		req.TenantSlug, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	tenant, err := uc.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("GetAvailableSlots: tenant=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get tenant=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	allSlots := generateSlotLabels(tenant.WorkStart, tenant.WorkEnd, tenant.BreakStart, tenant.BreakEnd)

	taken, err := uc.bookingRepo.ListActiveByTenantAndDate(ctx, req.TenantSlug, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for tenant=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	free := subtractTaken(allSlots, taken)

	uc.logger.Info("GetAvailableSlots: tenant=%s, date=%s: %d of %d slots free",
		req.TenantSlug, req.Date.Format(domain.DateFormat), len(free), len(allSlots))

	return &Response{
		TenantSlug: req.TenantSlug,
		Date:       req.Date,
		FreeSlots:  free,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantSlug == "" {
		return fmt.Errorf("%w: tenant slug is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
