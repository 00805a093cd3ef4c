package login

import "github.com/agendahub/TenantBookingService/internal/service/auth"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token string `json:"token"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// FromLoginResult конвертирует результат аутентификации в HTTP response
func FromLoginResult(result *auth.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: result.Token,
		Slug:  result.Slug,
		Name:  result.Name,
		Role:  string(result.Role),
	}
}
