package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTenantRepo struct {
	tenants map[string]*domain.Tenant
}

func (r *fakeTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t, ok := r.tenants[slug]
	if !ok {
		return nil, tenantRepo.ErrTenantNotFound
	}
	return t, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) ListActiveByTenantAndDate(ctx context.Context, tenantSlug string, date time.Time) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.TenantSlug == tenantSlug && b.BookingDate.Equal(date) && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func newUseCase(tenants map[string]*domain.Tenant, bookings []*domain.Booking) *UseCase {
	return NewUseCase(
		&fakeTenantRepo{tenants: tenants},
		&fakeBookingRepo{bookings: bookings},
		nopLogger{},
	)
}

func TestExecute_TenantNotFound(t *testing.T) {
	uc := newUseCase(map[string]*domain.Tenant{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		TenantSlug: "ghost",
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_TakenSlotsExcluded(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tenant := &domain.Tenant{Slug: "barber", WorkStart: "09:00", WorkEnd: "11:00"}
	uc := newUseCase(
		map[string]*domain.Tenant{"barber": tenant},
		[]*domain.Booking{
			{TenantSlug: "barber", BookingDate: date, BookingTime: "09:30", Status: domain.StatusConfirmed},
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantSlug: "barber", Date: date})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, labels(resp.FreeSlots))
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tenant := &domain.Tenant{Slug: "barber", WorkStart: "09:00", WorkEnd: "10:00"}
	uc := newUseCase(
		map[string]*domain.Tenant{"barber": tenant},
		[]*domain.Booking{
			{TenantSlug: "barber", BookingDate: date, BookingTime: "09:00", Status: domain.StatusCancelled},
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantSlug: "barber", Date: date})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, labels(resp.FreeSlots))
}

func TestExecute_OtherDateDoesNotAffectAvailability(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	otherDate := date.AddDate(0, 0, 1)
	tenant := &domain.Tenant{Slug: "barber", WorkStart: "09:00", WorkEnd: "10:00"}
	uc := newUseCase(
		map[string]*domain.Tenant{"barber": tenant},
		[]*domain.Booking{
			{TenantSlug: "barber", BookingDate: otherDate, BookingTime: "09:00", Status: domain.StatusConfirmed},
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantSlug: "barber", Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.FreeSlots, 2)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(map[string]*domain.Tenant{}, nil)

	_, err := uc.Execute(context.Background(), &Request{TenantSlug: "", Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TenantSlug: "barber"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
