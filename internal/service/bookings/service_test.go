package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendahub/TenantBookingService/internal/domain"
	bookingRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	byID map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ListByTenant(ctx context.Context, tenantSlug string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.byID {
		if b.TenantSlug == tenantSlug {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func ownerOf(slug string) domain.Principal {
	return domain.Principal{ID: 1, TenantSlug: slug, Name: "Owner", Role: domain.RoleOwner}
}

func newTestService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{byID: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.byID[b.ID] = b
	}
	return NewService(repo, nopLogger{}), repo
}

func TestListTenantBookings_ScopedToPrincipalTenant(t *testing.T) {
	svc, _ := newTestService(
		&domain.Booking{ID: 1, TenantSlug: "barber", Status: domain.StatusConfirmed},
		&domain.Booking{ID: 2, TenantSlug: "other-shop", Status: domain.StatusConfirmed},
	)

	views, err := svc.ListTenantBookings(context.Background(), ownerOf("barber"), "barber")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].ID)
}

func TestListTenantBookings_CrossTenantDenied(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ListTenantBookings(context.Background(), ownerOf("other-shop"), "barber")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_ConfirmedToCancelled(t *testing.T) {
	svc, repo := newTestService(
		&domain.Booking{ID: 1, TenantSlug: "barber", Status: domain.StatusConfirmed},
	)

	err := svc.UpdateStatus(context.Background(), ownerOf("barber"), 1, "cancelled")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.byID[1].Status)
}

func TestUpdateStatus_ConfirmedToCompleted(t *testing.T) {
	svc, repo := newTestService(
		&domain.Booking{ID: 1, TenantSlug: "barber", Status: domain.StatusConfirmed},
	)

	err := svc.UpdateStatus(context.Background(), ownerOf("barber"), 1, "completed")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.byID[1].Status)
}

func TestUpdateStatus_TerminalStatusRejected(t *testing.T) {
	for _, terminal := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		svc, repo := newTestService(
			&domain.Booking{ID: 1, TenantSlug: "barber", Status: terminal},
		)

		err := svc.UpdateStatus(context.Background(), ownerOf("barber"), 1, "cancelled")

		assert.ErrorIs(t, err, ErrBookingFinalized, "from %s", terminal)
		assert.Equal(t, terminal, repo.byID[1].Status)
	}
}

func TestUpdateStatus_ConfirmedIsNotAValidTarget(t *testing.T) {
	svc, _ := newTestService(
		&domain.Booking{ID: 1, TenantSlug: "barber", Status: domain.StatusConfirmed},
	)

	err := svc.UpdateStatus(context.Background(), ownerOf("barber"), 1, "confirmed")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := newTestService(
		&domain.Booking{ID: 1, TenantSlug: "barber", Status: domain.StatusConfirmed},
	)

	err := svc.UpdateStatus(context.Background(), ownerOf("barber"), 1, "paused")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateStatus(context.Background(), ownerOf("barber"), 99, "cancelled")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_CrossTenantDenied(t *testing.T) {
	svc, repo := newTestService(
		&domain.Booking{ID: 1, TenantSlug: "barber", Status: domain.StatusConfirmed},
	)

	err := svc.UpdateStatus(context.Background(), ownerOf("other-shop"), 1, "cancelled")

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusConfirmed, repo.byID[1].Status)
}

func TestUpdateStatus_StaffRolesAllowed(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleManager, domain.RoleMember} {
		svc, _ := newTestService(
			&domain.Booking{ID: 1, TenantSlug: "barber", Status: domain.StatusConfirmed},
		)
		principal := domain.Principal{ID: 7, TenantSlug: "barber", Role: role}

		err := svc.UpdateStatus(context.Background(), principal, 1, "completed")

		assert.NoError(t, err, "role %s", role)
	}
}
