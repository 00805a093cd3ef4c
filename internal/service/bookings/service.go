package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendahub/TenantBookingService/internal/domain"
	bookingRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/booking"
	"github.com/agendahub/TenantBookingService/internal/service/bookings/models"
)

// Service сервис staff-операций над бронированиями:
// агенда тенанта и жизненный цикл статусов
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListTenantBookings возвращает агенду тенанта
// Доступно только принципалам этого тенанта
func (s *Service) ListTenantBookings(ctx context.Context, principal domain.Principal, tenantSlug string) ([]*models.BookingView, error) {
	if err := s.checkAgendaAccess(principal, tenantSlug); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByTenant(ctx, tenantSlug)
	if err != nil {
		s.logger.Error("ListTenantBookings: repository error for tenant=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: ListTenantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTenantBookings: fetched %d bookings for tenant=%s", len(bookings), tenantSlug)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus выполняет переход статуса бронирования
//
// Допустимые переходы: confirmed -> cancelled, confirmed -> completed.
// Попытка перевести бронирование из терминального статуса отклоняется
// с ErrBookingFinalized. Отмена освобождает слот (инвариант уникальности
// действует только среди неотменённых строк)
func (s *Service) UpdateStatus(ctx context.Context, principal domain.Principal, bookingID int64, status string) error {
	s.logger.Info("UpdateStatus: booking id=%d -> status=%s by principal id=%d tenant=%s",
		bookingID, status, principal.ID, principal.TenantSlug)

	newStatus, ok := domain.ParseBookingStatus(status)
	if !ok {
		s.logger.Warn("UpdateStatus: unknown status=%q for booking id=%d", status, bookingID)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Статусами управляет только персонал владеющего тенанта
	if err := s.checkAgendaAccess(principal, booking.TenantSlug); err != nil {
		return err
	}

	if !booking.CanTransitionTo(newStatus) {
		if booking.IsTerminal() {
			s.logger.Warn("UpdateStatus: booking id=%d already finalized with status=%s", bookingID, booking.Status)
			return ErrBookingFinalized
		}
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)
	return nil
}

// checkAgendaAccess проверяет тенантную область и право чтения агенды
func (s *Service) checkAgendaAccess(principal domain.Principal, tenantSlug string) error {
	if !principal.IsScopedTo(tenantSlug) {
		s.logger.Warn("checkAgendaAccess: principal tenant=%s denied for tenant=%s",
			principal.TenantSlug, tenantSlug)
		return ErrAccessDenied
	}
	if !principal.CanViewAgenda() {
		s.logger.Warn("checkAgendaAccess: role=%s has no agenda access", principal.Role)
		return ErrAccessDenied
	}
	return nil
}
