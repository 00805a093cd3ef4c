package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendahub/TenantBookingService/internal/domain"
	teamRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/team"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
	"github.com/agendahub/TenantBookingService/internal/service/team/models"
)

// Service сервис управления командой тенанта
// Создание и удаление сотрудников доступны только владельцу;
// manager и member имеют одинаковые права чтения и не управляют командой
type Service struct {
	teamRepo   TeamRepository
	tenantRepo TenantRepository
	hasher     PasswordHasher
	logger     Logger
}

// NewService создает новый экземпляр сервиса команды
func NewService(teamRepo TeamRepository, tenantRepo TenantRepository, hasher PasswordHasher, logger Logger) *Service {
	return &Service{
		teamRepo:   teamRepo,
		tenantRepo: tenantRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

// CreateMember создает сотрудника в тенанте принципала
func (s *Service) CreateMember(ctx context.Context, principal domain.Principal, tenantSlug string, req *models.CreateMemberRequest) (*models.MemberView, error) {
	if err := s.checkManageAccess(principal, tenantSlug); err != nil {
		return nil, err
	}

	if req.Email == "" || req.Name == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email, name and password are required", ErrInvalidInput)
	}

	role, err := parseMemberRole(req.Role)
	if err != nil {
		s.logger.Warn("CreateMember: invalid role=%q for tenant=%s", req.Role, tenantSlug)
		return nil, err
	}

	// Email должен быть глобально уникален: сотрудники проверяются
	// ограничением БД, коллизию с email тенанта проверяем здесь
	_, err = s.tenantRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		s.logger.Warn("CreateMember: email=%s already used by a tenant", req.Email)
		return nil, ErrEmailInUse
	}
	if !errors.Is(err, tenantRepo.ErrTenantNotFound) {
		s.logger.Error("CreateMember: tenant email lookup failed: %v", err)
		return nil, fmt.Errorf("%w: tenant email lookup: %v", ErrInternal, err)
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("CreateMember: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	member := &domain.TeamMember{
		TenantSlug:   tenantSlug,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.teamRepo.Create(ctx, member)
	if err != nil {
		if errors.Is(err, teamRepo.ErrEmailInUse) {
			s.logger.Warn("CreateMember: email=%s already in use", req.Email)
			return nil, ErrEmailInUse
		}
		s.logger.Error("CreateMember: repository error for tenant=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: CreateMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMember: created member id=%d tenant=%s role=%s", created.ID, tenantSlug, role)
	return models.FromDomainMember(created), nil
}

// ListMembers возвращает сотрудников тенанта
func (s *Service) ListMembers(ctx context.Context, principal domain.Principal, tenantSlug string) ([]*models.MemberView, error) {
	if !principal.IsScopedTo(tenantSlug) {
		s.logger.Warn("ListMembers: principal tenant=%s denied for tenant=%s", principal.TenantSlug, tenantSlug)
		return nil, ErrAccessDenied
	}
	if !principal.CanViewAgenda() {
		return nil, ErrAccessDenied
	}

	members, err := s.teamRepo.ListByTenant(ctx, tenantSlug)
	if err != nil {
		s.logger.Error("ListMembers: repository error for tenant=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: ListMembers - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMemberList(members), nil
}

// DeleteMember удаляет сотрудника тенанта
func (s *Service) DeleteMember(ctx context.Context, principal domain.Principal, tenantSlug string, memberID int64) error {
	if err := s.checkManageAccess(principal, tenantSlug); err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, memberID, tenantSlug); err != nil {
		if errors.Is(err, teamRepo.ErrMemberNotFound) {
			s.logger.Warn("DeleteMember: member id=%d not found in tenant=%s", memberID, tenantSlug)
			return ErrMemberNotFound
		}
		s.logger.Error("DeleteMember: repository error for member id=%d: %v", memberID, err)
		return fmt.Errorf("%w: DeleteMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteMember: deleted member id=%d from tenant=%s", memberID, tenantSlug)
	return nil
}

// checkManageAccess проверяет тенантную область и право управлять командой
func (s *Service) checkManageAccess(principal domain.Principal, tenantSlug string) error {
	if !principal.IsScopedTo(tenantSlug) {
		s.logger.Warn("checkManageAccess: principal tenant=%s denied for tenant=%s",
			principal.TenantSlug, tenantSlug)
		return ErrAccessDenied
	}
	if !principal.CanManageTeam() {
		s.logger.Warn("checkManageAccess: role=%s cannot manage team", principal.Role)
		return ErrAccessDenied
	}
	return nil
}

// parseMemberRole валидирует роль создаваемого сотрудника
// Роль owner не хранится в team_members - владелец представлен самой
// записью тенанта
func parseMemberRole(raw string) (domain.Role, error) {
	if raw == "" {
		return domain.RoleMember, nil
	}

	role, ok := domain.ParseRole(raw)
	if !ok || role == domain.RoleOwner {
		return "", fmt.Errorf("%w: role must be manager or member", ErrInvalidInput)
	}
	return role, nil
}
