package tenants

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
	"github.com/agendahub/TenantBookingService/internal/service/tenants/models"
)

// Service сервис управления тенантами: регистрация, публичный каталог,
// чтение и обновление конфигурации
type Service struct {
	tenantRepo TenantRepository
	hasher     PasswordHasher
	logger     Logger
}

// NewService создает новый экземпляр сервиса тенантов
func NewService(tenantRepo TenantRepository, hasher PasswordHasher, logger Logger) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

// Signup регистрирует нового тенанта
// Уникальность slug/email обеспечивает БД (ErrTenantExists при конфликте)
func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) (*domain.Tenant, error) {
	if err := validateSignup(req); err != nil {
		s.logger.Warn("Signup: validation failed: %v", err)
		return nil, err
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Signup: failed to hash password for slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	tenant := &domain.Tenant{
		Slug:         req.Slug,
		Name:         req.Name,
		Theme:        req.Theme,
		Whatsapp:     req.Whatsapp,
		Services:     req.Services,
		PixKey:       req.PixKey,
		Email:        req.Email,
		PasswordHash: hash,
		WorkStart:    defaultIfEmpty(req.WorkStart, domain.DefaultWorkStart),
		WorkEnd:      defaultIfEmpty(req.WorkEnd, domain.DefaultWorkEnd),
		BreakStart:   req.BreakStart,
		BreakEnd:     req.BreakEnd,
	}
	if tenant.Services == nil {
		tenant.Services = []domain.CatalogService{}
	}

	created, err := s.tenantRepo.Create(ctx, tenant)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantExists) {
			s.logger.Warn("Signup: slug=%s or email already in use", req.Slug)
			return nil, ErrTenantExists
		}
		s.logger.Error("Signup: repository error for slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Signup: created tenant id=%d slug=%s", created.ID, created.Slug)
	return created, nil
}

// List возвращает публичный каталог тенантов
func (s *Service) List(ctx context.Context) ([]*models.TenantSummary, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTenantList(tenants), nil
}

// GetConfig возвращает публичную конфигурацию тенанта
func (s *Service) GetConfig(ctx context.Context, slug string) (*models.TenantConfig, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("GetConfig: tenant slug=%s not found", slug)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("GetConfig: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTenant(tenant), nil
}

// UpdateConfig обновляет конфигурацию тенанта
// Доступно только владельцу этого тенанта
func (s *Service) UpdateConfig(ctx context.Context, principal domain.Principal, slug string, req *models.UpdateConfigRequest) error {
	if !principal.IsScopedTo(slug) {
		s.logger.Warn("UpdateConfig: principal tenant=%s denied for tenant=%s", principal.TenantSlug, slug)
		return ErrAccessDenied
	}
	if !principal.CanUpdateConfig() {
		s.logger.Warn("UpdateConfig: role=%s cannot update config", principal.Role)
		return ErrAccessDenied
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateCatalog(req.Services); err != nil {
		return err
	}

	tenant := &domain.Tenant{
		Slug:       slug,
		Name:       req.Name,
		Theme:      req.Theme,
		Whatsapp:   req.Whatsapp,
		Services:   req.Services,
		PixKey:     req.PixKey,
		WorkStart:  defaultIfEmpty(req.WorkStart, domain.DefaultWorkStart),
		WorkEnd:    defaultIfEmpty(req.WorkEnd, domain.DefaultWorkEnd),
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
	}
	if tenant.Services == nil {
		tenant.Services = []domain.CatalogService{}
	}

	if err := s.tenantRepo.UpdateConfig(ctx, tenant); err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("UpdateConfig: tenant slug=%s not found", slug)
			return ErrTenantNotFound
		}
		s.logger.Error("UpdateConfig: repository error for slug=%s: %v", slug, err)
		return fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: tenant slug=%s updated", slug)
	return nil
}

// validateSignup проверяет обязательные поля регистрации
func validateSignup(req *models.SignupRequest) error {
	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	return validateCatalog(req.Services)
}

// validateCatalog проверяет каталог услуг
// Названия услуг уникальны в пределах тенанта
func validateCatalog(services []domain.CatalogService) error {
	seen := make(map[string]struct{}, len(services))
	for _, svc := range services {
		if svc.Name == "" {
			return fmt.Errorf("%w: service name is required", ErrInvalidInput)
		}
		if svc.Price < 0 {
			return fmt.Errorf("%w: service %q has negative price", ErrInvalidInput, svc.Name)
		}
		if _, ok := seen[svc.Name]; ok {
			return fmt.Errorf("%w: duplicate service name %q", ErrInvalidInput, svc.Name)
		}
		seen[svc.Name] = struct{}{}
	}
	return nil
}

func defaultIfEmpty(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
