package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendahub/TenantBookingService/internal/domain"
	teamRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/team"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
	"github.com/agendahub/TenantBookingService/internal/service/team/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTeamRepo struct {
	nextID  int64
	members map[int64]*domain.TeamMember
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{members: make(map[int64]*domain.TeamMember)}
}

func (r *fakeTeamRepo) Create(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	for _, existing := range r.members {
		if existing.Email == m.Email {
			return nil, teamRepo.ErrEmailInUse
		}
	}
	r.nextID++
	created := *m
	created.ID = r.nextID
	r.members[created.ID] = &created
	return &created, nil
}

func (r *fakeTeamRepo) ListByTenant(ctx context.Context, tenantSlug string) ([]*domain.TeamMember, error) {
	out := make([]*domain.TeamMember, 0)
	for _, m := range r.members {
		if m.TenantSlug == tenantSlug {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, id int64, tenantSlug string) error {
	m, ok := r.members[id]
	if !ok || m.TenantSlug != tenantSlug {
		return teamRepo.ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}

type fakeTenantRepo struct {
	emails map[string]*domain.Tenant
}

func (r *fakeTenantRepo) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	t, ok := r.emails[email]
	if !ok {
		return nil, tenantRepo.ErrTenantNotFound
	}
	return t, nil
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func ownerOf(slug string) domain.Principal {
	return domain.Principal{ID: 1, TenantSlug: slug, Name: "Owner", Role: domain.RoleOwner}
}

func validCreateRequest() *models.CreateMemberRequest {
	return &models.CreateMemberRequest{
		Email:    "staff@barber.com",
		Name:     "Staff",
		Password: "staffpass",
		Role:     "member",
	}
}

func newTestService(tenantEmails map[string]*domain.Tenant) (*Service, *fakeTeamRepo) {
	repo := newFakeTeamRepo()
	if tenantEmails == nil {
		tenantEmails = map[string]*domain.Tenant{}
	}
	svc := NewService(repo, &fakeTenantRepo{emails: tenantEmails}, fakeHasher{}, nopLogger{})
	return svc, repo
}

func TestCreateMember_OwnerCreatesMember(t *testing.T) {
	svc, repo := newTestService(nil)

	view, err := svc.CreateMember(context.Background(), ownerOf("barber"), "barber", validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "staff@barber.com", view.Email)
	assert.Equal(t, "member", view.Role)
	assert.Equal(t, "hashed:staffpass", repo.members[view.ID].PasswordHash)
}

func TestCreateMember_DefaultRoleIsMember(t *testing.T) {
	svc, _ := newTestService(nil)

	req := validCreateRequest()
	req.Role = ""
	view, err := svc.CreateMember(context.Background(), ownerOf("barber"), "barber", req)

	require.NoError(t, err)
	assert.Equal(t, "member", view.Role)
}

func TestCreateMember_OwnerRoleRejected(t *testing.T) {
	svc, _ := newTestService(nil)

	req := validCreateRequest()
	req.Role = "owner"
	_, err := svc.CreateMember(context.Background(), ownerOf("barber"), "barber", req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateMember_NonOwnerRolesDenied(t *testing.T) {
	svc, _ := newTestService(nil)

	for _, role := range []domain.Role{domain.RoleManager, domain.RoleMember} {
		principal := domain.Principal{ID: 7, TenantSlug: "barber", Role: role}
		_, err := svc.CreateMember(context.Background(), principal, "barber", validCreateRequest())
		assert.ErrorIs(t, err, ErrAccessDenied, "role %s", role)
	}
}

func TestCreateMember_CrossTenantDenied(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.CreateMember(context.Background(), ownerOf("other-shop"), "barber", validCreateRequest())

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateMember_EmailCollidingWithTenantRejected(t *testing.T) {
	svc, _ := newTestService(map[string]*domain.Tenant{
		"staff@barber.com": {Slug: "another-tenant"},
	})

	_, err := svc.CreateMember(context.Background(), ownerOf("barber"), "barber", validCreateRequest())

	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestCreateMember_DuplicateMemberEmailRejected(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.CreateMember(context.Background(), ownerOf("barber"), "barber", validCreateRequest())
	require.NoError(t, err)

	_, err = svc.CreateMember(context.Background(), ownerOf("barber"), "barber", validCreateRequest())
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestListMembers_AnyStaffRoleAllowed(t *testing.T) {
	svc, _ := newTestService(nil)
	_, err := svc.CreateMember(context.Background(), ownerOf("barber"), "barber", validCreateRequest())
	require.NoError(t, err)

	for _, role := range []domain.Role{domain.RoleOwner, domain.RoleManager, domain.RoleMember} {
		principal := domain.Principal{ID: 7, TenantSlug: "barber", Role: role}
		members, err := svc.ListMembers(context.Background(), principal, "barber")
		require.NoError(t, err, "role %s", role)
		assert.Len(t, members, 1)
	}
}

func TestDeleteMember_OwnerDeletes(t *testing.T) {
	svc, repo := newTestService(nil)
	view, err := svc.CreateMember(context.Background(), ownerOf("barber"), "barber", validCreateRequest())
	require.NoError(t, err)

	err = svc.DeleteMember(context.Background(), ownerOf("barber"), "barber", view.ID)

	require.NoError(t, err)
	assert.Empty(t, repo.members)
}

func TestDeleteMember_NotFound(t *testing.T) {
	svc, _ := newTestService(nil)

	err := svc.DeleteMember(context.Background(), ownerOf("barber"), "barber", 99)

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestDeleteMember_ManagerDenied(t *testing.T) {
	svc, repo := newTestService(nil)
	view, err := svc.CreateMember(context.Background(), ownerOf("barber"), "barber", validCreateRequest())
	require.NoError(t, err)

	manager := domain.Principal{ID: 7, TenantSlug: "barber", Role: domain.RoleManager}
	err = svc.DeleteMember(context.Background(), manager, "barber", view.ID)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, repo.members, 1)
}
