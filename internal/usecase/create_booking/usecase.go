package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendahub/TenantBookingService/internal/domain"
	bookingRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/booking"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
)

// UseCase use case для создания бронирования
//
// Инвариант "не более одного неотменённого бронирования на
// (tenant, date, time)" обеспечивается исключительно атомарной
// вставкой в репозитории: никаких блокировок, транзакций и
// предварительных проверок занятости на этом уровне нет.
// При конкурентных запросах на один слот ровно один выигрывает,
// остальные получают ErrSlotNotAvailable
type UseCase struct {
	tenantRepo  TenantRepository
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tenantRepo TenantRepository, bookingRepo BookingRepository, metrics Metrics, logger Logger) *UseCase {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &UseCase{
		tenantRepo:  tenantRepo,
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%s, date=%s, time=%s",
		req.TenantSlug, req.Date.Format(domain.DateFormat), req.Time)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.tenantRepo.GetBySlug(ctx, req.TenantSlug); err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("CreateBooking: tenant=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tenant=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		TenantSlug:    req.TenantSlug,
		ServiceName:   req.ServiceName,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		BookingDate:   req.Date,
		BookingTime:   req.Time,
		Status:        domain.StatusConfirmed,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.metrics.IncSlotConflict()
			uc.logger.Warn("CreateBooking: slot conflict: tenant=%s, date=%s, time=%s",
				req.TenantSlug, req.Date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: created booking id=%d for tenant=%s", created.ID, created.TenantSlug)

	return &Response{
		ID:            created.ID,
		TenantSlug:    created.TenantSlug,
		ServiceName:   created.ServiceName,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		Date:          created.BookingDate,
		Time:          created.BookingTime,
		Status:        string(created.Status),
		CreatedAt:     created.CreatedAt,
	}, nil
}
