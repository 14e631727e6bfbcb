package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/errors"
	"github.com/ParadigmParadoxicalPiercer/para-praxis/pkg/httputil"
)

type contextKeyType string

const currentUserKey contextKeyType = "current_user"

// AuthUser is the authenticated identity attached to the request context.
type AuthUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenValidator validates a bearer token and resolves it to an identity.
// Implementations are expected to return an AppError (TOKEN_EXPIRED,
// TOKEN_INVALID, TOKEN_REQUIRED) so the middleware can surface a
// machine-distinguishable reason.
type TokenValidator func(ctx context.Context, token string) (*AuthUser, error)

// Auth gates access to protected routes. It extracts the bearer token from
// the Authorization header, validates it via the injected validator, and
// attaches the resolved identity to the request context. The check is
// stateless with respect to the access token itself; only the refresh path
// touches persisted session state.
func Auth(validate TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.WriteError(w, r, errors.TokenRequired(), logger)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				httputil.WriteError(w, r, errors.TokenRequired(), logger)
				return
			}

			user, err := validate(r.Context(), parts[1])
			if err != nil {
				httputil.WriteError(w, r, err, logger)
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if the Auth middleware did not run.
func UserFromContext(ctx context.Context) *AuthUser {
	if u, ok := ctx.Value(currentUserKey).(*AuthUser); ok {
		return u
	}
	return nil
}
