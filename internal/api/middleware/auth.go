package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/logisync/scheduling-service/internal/api/handlers"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	roleStaff = "staff"

	msgMissingUserID = "identificação do usuário ausente"
	msgInvalidUserID = "identificação do usuário inválida"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isStaffKey contextKey = "isStaff"
)

// Logger is the logging interface used by the middleware.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth resolves the caller identity from the gateway-injected headers and
// stores it in the request context. Requests without a valid user ID are
// rejected before reaching the handler.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(headerUserID)
			if userIDStr == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, headerUserID)
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
				return
			}

			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil {
				logger.Warn("%s %s - Invalid %s header: %v", r.Method, r.URL.Path, headerUserID, err)
				handlers.RespondError(w, http.StatusUnauthorized, msgInvalidUserID)
				return
			}

			isStaff := r.Header.Get(headerUserRole) == roleStaff

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, isStaffKey, isStaff)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user ID.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsStaffFromContext reports whether the caller has the staff role.
func IsStaffFromContext(ctx context.Context) bool {
	isStaff, ok := ctx.Value(isStaffKey).(bool)
	return ok && isStaff
}
