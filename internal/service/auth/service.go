package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/agendahub/TenantBookingService/internal/domain"
	tenantRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/tenant"
	teamRepo "github.com/agendahub/TenantBookingService/internal/infra/storage/team"
)

// Service сервис аутентификации и выпуска токенов
//
// Принципал - либо владелец (аутентифицируется по credential-полям самой
// записи тенанта, роль owner), либо сотрудник из team_members
// (роль manager или member). Поиск при логине идёт сначала по тенантам,
// затем по сотрудникам
type Service struct {
	tenantRepo TenantRepository
	teamRepo   TeamRepository
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	tenantRepo TenantRepository,
	teamRepo TeamRepository,
	secret string,
	tokenTTL time.Duration,
	bcryptCost int,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		teamRepo:   teamRepo,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Login аутентифицирует принципала и выпускает токен
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	principal, passwordHash, err := s.findPrincipal(ctx, email)
	if err != nil {
		return nil, err
	}

	// Сравнение только через bcrypt, никогда через plaintext
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		s.logger.Warn("Login: password mismatch for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(principal)
	if err != nil {
		s.logger.Error("Login: failed to issue token for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: authenticated principal id=%d, tenant=%s, role=%s",
		principal.ID, principal.TenantSlug, principal.Role)

	return &LoginResult{
		Token: token,
		Slug:  principal.TenantSlug,
		Name:  principal.Name,
		Role:  principal.Role,
	}, nil
}

// IssueToken выпускает подписанный токен для принципала
func (s *Service) IssueToken(p domain.Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		PrincipalID: p.ID,
		Slug:        p.TenantSlug,
		Name:        p.Name,
		Role:        string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken проверяет подпись и срок действия токена
// и восстанавливает принципала из claims
func (s *Service) VerifyToken(raw string) (domain.Principal, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Защита от подмены алгоритма подписи
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Principal{}, ErrInvalidToken
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return domain.Principal{}, ErrInvalidToken
	}

	return domain.Principal{
		ID:         claims.PrincipalID,
		TenantSlug: claims.Slug,
		Name:       claims.Name,
		Role:       role,
	}, nil
}

// HashPassword хеширует пароль для хранения
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}
	return string(hash), nil
}

// findPrincipal ищет принципала по email: сначала среди тенантов (owner),
// затем среди сотрудников
func (s *Service) findPrincipal(ctx context.Context, email string) (domain.Principal, string, error) {
	tenant, err := s.tenantRepo.GetByEmail(ctx, email)
	if err == nil {
		return domain.OwnerPrincipal(tenant), tenant.PasswordHash, nil
	}
	if !errors.Is(err, tenantRepo.ErrTenantNotFound) {
		s.logger.Error("findPrincipal: tenant lookup failed for email=%s: %v", email, err)
		return domain.Principal{}, "", fmt.Errorf("%w: tenant lookup: %v", ErrInternal, err)
	}

	member, err := s.teamRepo.GetByEmail(ctx, email)
	if err == nil {
		return domain.StaffPrincipal(member), member.PasswordHash, nil
	}
	if !errors.Is(err, teamRepo.ErrMemberNotFound) {
		s.logger.Error("findPrincipal: team member lookup failed for email=%s: %v", email, err)
		return domain.Principal{}, "", fmt.Errorf("%w: team member lookup: %v", ErrInternal, err)
	}

	s.logger.Warn("findPrincipal: no principal for email=%s", email)
	return domain.Principal{}, "", ErrInvalidCredentials
}
