package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/agendahub/TenantBookingService/internal/domain"
)

// Claims полезная нагрузка токена
// Токен привязывает принципала к одному тенанту и одной роли
type Claims struct {
	PrincipalID int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult результат успешной аутентификации
type LoginResult struct {
	Token string
	Slug  string
	Name  string
	Role  domain.Role
}
