package tenants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
	"github.com/agendahub/TenantBookingService/internal/service/tenants/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTenantRepo struct {
	nextID  int64
	bySlug  map[string]*domain.Tenant
	byEmail map[string]*domain.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		bySlug:  make(map[string]*domain.Tenant),
		byEmail: make(map[string]*domain.Tenant),
	}
}

func (r *fakeTenantRepo) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	if _, ok := r.bySlug[t.Slug]; ok {
		return nil, tenantRepo.ErrTenantExists
	}
	if _, ok := r.byEmail[t.Email]; ok {
		return nil, tenantRepo.ErrTenantExists
	}
	r.nextID++
	created := *t
	created.ID = r.nextID
	r.bySlug[created.Slug] = &created
	r.byEmail[created.Email] = &created
	return &created, nil
}

func (r *fakeTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t, ok := r.bySlug[slug]
	if !ok {
		return nil, tenantRepo.ErrTenantNotFound
	}
	return t, nil
}

func (r *fakeTenantRepo) List(ctx context.Context) ([]*domain.Tenant, error) {
	out := make([]*domain.Tenant, 0, len(r.bySlug))
	for _, t := range r.bySlug {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTenantRepo) UpdateConfig(ctx context.Context, t *domain.Tenant) error {
	existing, ok := r.bySlug[t.Slug]
	if !ok {
		return tenantRepo.ErrTenantNotFound
	}
	existing.Name = t.Name
	existing.Theme = t.Theme
	existing.Whatsapp = t.Whatsapp
	existing.Services = t.Services
	existing.PixKey = t.PixKey
	existing.WorkStart = t.WorkStart
	existing.WorkEnd = t.WorkEnd
	existing.BreakStart = t.BreakStart
	existing.BreakEnd = t.BreakEnd
	return nil
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func ownerOf(slug string) domain.Principal {
	return domain.Principal{ID: 1, TenantSlug: slug, Name: "Owner", Role: domain.RoleOwner}
}

func validSignup() *models.SignupRequest {
	return &models.SignupRequest{
		Slug:     "barber",
		Name:     "Barber Shop",
		Email:    "owner@barber.com",
		Password: "secret123",
		Services: []domain.CatalogService{{Name: "Corte", Price: 50, Duration: 30}},
	}
}

func newTestService() (*Service, *fakeTenantRepo) {
	repo := newFakeTenantRepo()
	return NewService(repo, fakeHasher{}, nopLogger{}), repo
}

func TestSignup_CreatesTenantWithDefaults(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Signup(context.Background(), validSignup())

	require.NoError(t, err)
	assert.Equal(t, "barber", created.Slug)
	assert.Equal(t, "09:00", created.WorkStart)
	assert.Equal(t, "18:00", created.WorkEnd)
	assert.Equal(t, "hashed:secret123", repo.bySlug["barber"].PasswordHash)
}

func TestSignup_ExplicitHoursKept(t *testing.T) {
	svc, _ := newTestService()

	req := validSignup()
	req.WorkStart = "08:00"
	req.WorkEnd = "20:00"
	req.BreakStart = "12:00"
	req.BreakEnd = "13:00"
	created, err := svc.Signup(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "08:00", created.WorkStart)
	assert.Equal(t, "13:00", created.BreakEnd)
}

func TestSignup_DuplicateSlugRejected(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	second := validSignup()
	second.Email = "another@barber.com"
	_, err = svc.Signup(context.Background(), second)

	assert.ErrorIs(t, err, ErrTenantExists)
}

func TestSignup_DuplicateServiceNamesRejected(t *testing.T) {
	svc, _ := newTestService()

	req := validSignup()
	req.Services = []domain.CatalogService{
		{Name: "Corte", Price: 50},
		{Name: "Corte", Price: 70},
	}
	_, err := svc.Signup(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignup_MissingFieldsRejected(t *testing.T) {
	svc, _ := newTestService()

	req := validSignup()
	req.Password = ""
	_, err := svc.Signup(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetConfig_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetConfig(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestUpdateConfig_OwnerUpdates(t *testing.T) {
	svc, repo := newTestService()
	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	err = svc.UpdateConfig(context.Background(), ownerOf("barber"), "barber", &models.UpdateConfigRequest{
		Name:      "Renamed Shop",
		WorkStart: "10:00",
		WorkEnd:   "16:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Shop", repo.bySlug["barber"].Name)
	assert.Equal(t, "10:00", repo.bySlug["barber"].WorkStart)
}

func TestUpdateConfig_CredentialsUntouched(t *testing.T) {
	svc, repo := newTestService()
	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	err = svc.UpdateConfig(context.Background(), ownerOf("barber"), "barber", &models.UpdateConfigRequest{
		Name: "Renamed Shop",
	})

	require.NoError(t, err)
	assert.Equal(t, "owner@barber.com", repo.bySlug["barber"].Email)
	assert.Equal(t, "hashed:secret123", repo.bySlug["barber"].PasswordHash)
}

func TestUpdateConfig_NonOwnerDenied(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	for _, role := range []domain.Role{domain.RoleManager, domain.RoleMember} {
		principal := domain.Principal{ID: 7, TenantSlug: "barber", Role: role}
		err = svc.UpdateConfig(context.Background(), principal, "barber", &models.UpdateConfigRequest{Name: "X"})
		assert.ErrorIs(t, err, ErrAccessDenied, "role %s", role)
	}
}

func TestUpdateConfig_CrossTenantDenied(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	err = svc.UpdateConfig(context.Background(), ownerOf("other-shop"), "barber", &models.UpdateConfigRequest{Name: "X"})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
