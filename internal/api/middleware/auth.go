package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/agendahub/TenantBookingService/internal/api/handlers"
	"github.com/agendahub/TenantBookingService/internal/domain"
)

const msgMissingToken = "требуется заголовок Authorization с Bearer-токеном"
const msgInvalidToken = "невалидный или истёкший токен"

type ctxKey int

const principalKey ctxKey = iota

// TokenVerifier интерфейс проверки токена
type TokenVerifier interface {
	VerifyToken(raw string) (domain.Principal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет Bearer-токен и кладет принципала в контекст запроса
// Запросы без валидного токена отклоняются с 401
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			principal, err := verifier.VerifyToken(raw)
			if err != nil {
				logger.Warn("Auth: token rejected: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext извлекает принципала, положенного Auth-middleware
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
