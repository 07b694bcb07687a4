package middleware

import (
	"net/http"

	"github.com/m04kA/FFP-BookingService/internal/api/handlers"
	"github.com/m04kA/FFP-BookingService/internal/auth"
)

const msgForbidden = "доступ запрещен"

// RequireCapability пропускает запрос только если роль пользователя допущена к операции
// Должен стоять после Authenticate
func RequireCapability(cap auth.Capability, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				logger.Warn("%s %s - No identity in context", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			if !auth.RoleAllows(identity.Role, cap) {
				logger.Warn("%s %s - Capability %s denied for user=%d role=%s",
					r.Method, r.URL.Path, cap, identity.UserID, identity.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
