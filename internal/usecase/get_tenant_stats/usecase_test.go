package get_tenant_stats

import (
	"context"
	"testing"

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

func (r *fakeBookingRepo) ListByTenant(ctx context.Context, tenantSlug string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.TenantSlug == tenantSlug {
			out = append(out, b)
		}
	}
	return out, nil
}

func ownerOf(slug string) domain.Principal {
	return domain.Principal{ID: 1, TenantSlug: slug, Name: "Owner", Role: domain.RoleOwner}
}

func newTestUseCase(tenant *domain.Tenant, bookings []*domain.Booking) *UseCase {
	return NewUseCase(
		&fakeTenantRepo{tenants: map[string]*domain.Tenant{tenant.Slug: tenant}},
		&fakeBookingRepo{bookings: bookings},
		nopLogger{},
	)
}

func TestExecute_AggregatesCountsAndRevenue(t *testing.T) {
	tenant := &domain.Tenant{
		Slug: "barber",
		Services: []domain.CatalogService{
			{Name: "Corte", Price: 50},
			{Name: "Barba", Price: 30},
		},
	}
	bookings := []*domain.Booking{
		{TenantSlug: "barber", ServiceName: "Corte", Status: domain.StatusConfirmed},
		{TenantSlug: "barber", ServiceName: "Corte", Status: domain.StatusCompleted},
		{TenantSlug: "barber", ServiceName: "Barba", Status: domain.StatusCompleted},
		// Отменённое бронирование учитывается в счётчиках, но не в выручке
		{TenantSlug: "barber", ServiceName: "Corte", Status: domain.StatusCancelled},
	}

	uc := newTestUseCase(tenant, bookings)
	resp, err := uc.Execute(context.Background(), &Request{TenantSlug: "barber", Principal: ownerOf("barber")})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalBookings)
	assert.Equal(t, 1, resp.ConfirmedBookings)
	assert.Equal(t, 2, resp.CompletedBookings)
	assert.Equal(t, 1, resp.CancelledBookings)
	assert.Equal(t, "130.00", resp.Revenue)
}

func TestExecute_ServiceMissingFromCatalogContributesZero(t *testing.T) {
	tenant := &domain.Tenant{
		Slug:     "barber",
		Services: []domain.CatalogService{{Name: "Corte", Price: 50}},
	}
	bookings := []*domain.Booking{
		{TenantSlug: "barber", ServiceName: "Corte", Status: domain.StatusCompleted},
		{TenantSlug: "barber", ServiceName: "Removed Service", Status: domain.StatusCompleted},
	}

	uc := newTestUseCase(tenant, bookings)
	resp, err := uc.Execute(context.Background(), &Request{TenantSlug: "barber", Principal: ownerOf("barber")})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.CompletedBookings)
	assert.Equal(t, "50.00", resp.Revenue)
}

func TestExecute_EmptyAgenda(t *testing.T) {
	tenant := &domain.Tenant{Slug: "barber"}

	uc := newTestUseCase(tenant, nil)
	resp, err := uc.Execute(context.Background(), &Request{TenantSlug: "barber", Principal: ownerOf("barber")})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalBookings)
	assert.Equal(t, "0.00", resp.Revenue)
}

func TestExecute_CrossTenantDenied(t *testing.T) {
	tenant := &domain.Tenant{Slug: "barber"}

	uc := newTestUseCase(tenant, nil)
	_, err := uc.Execute(context.Background(), &Request{TenantSlug: "barber", Principal: ownerOf("other-shop")})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_StaffRolesCanViewStats(t *testing.T) {
	tenant := &domain.Tenant{Slug: "barber"}
	uc := newTestUseCase(tenant, nil)

	for _, role := range []domain.Role{domain.RoleManager, domain.RoleMember} {
		principal := domain.Principal{ID: 7, TenantSlug: "barber", Role: role}
		_, err := uc.Execute(context.Background(), &Request{TenantSlug: "barber", Principal: principal})
		assert.NoError(t, err, "role %s", role)
	}
}
