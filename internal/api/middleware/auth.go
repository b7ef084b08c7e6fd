package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/HBT-OccupancyService/internal/api/handlers"
	"github.com/m04kA/HBT-OccupancyService/internal/domain"
	"github.com/m04kA/HBT-OccupancyService/internal/integrations/userservice"
)

const (
	msgMissingToken  = "требуется заголовок Authorization с Bearer токеном"
	msgInvalidToken  = "невалидный токен"
	msgForbiddenRole = "доступ разрешен только регистратуре"
)

type scopeCtxKey struct{}

// TokenValidator проверяет токен через UserService
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*userservice.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth возвращает middleware аутентификации
// Валидирует Bearer токен и кладет hospital scope вызывающего в контекст запроса
func Auth(validator TokenValidator, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				log.Warn("Auth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, userservice.ErrInvalidToken) {
					log.Warn("Auth: invalid token for %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				log.Error("Auth: token validation failed: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			// Операции с занятостью доступны только регистратуре и администраторам
			if session.Role != domain.RoleReceptionist && session.Role != domain.RoleAdmin {
				log.Warn("Auth: forbidden role %s for %s %s", session.Role, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbiddenRole)
				return
			}

			scope := domain.HospitalScope{
				HospitalID:     session.HospitalID,
				ReceptionistID: session.ReceptionistID,
				Role:           session.Role,
			}

			ctx := context.WithValue(r.Context(), scopeCtxKey{}, scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ScopeFromContext извлекает hospital scope, положенный Auth middleware
func ScopeFromContext(ctx context.Context) (domain.HospitalScope, bool) {
	scope, ok := ctx.Value(scopeCtxKey{}).(domain.HospitalScope)
	return scope, ok
}

// extractBearerToken достает токен из заголовка Authorization
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
