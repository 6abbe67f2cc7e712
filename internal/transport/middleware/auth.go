package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pathpiper/pathpiper-backend/internal/auth"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// SessionCookie carries the Supabase access token for browser clients.
const SessionCookie = "sb-access-token"

type principalResolver interface {
	Resolve(ctx context.Context, token string) (domain.Principal, error)
}

// Auth resolves the access token, if any, into a principal on the context.
// Requests without a token pass through anonymously; a rejected token is
// answered with 401 and an unreachable identity provider with 503.
func Auth(resolver principalResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := AccessToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := resolver.Resolve(r.Context(), token)
			switch {
			case err == nil:
				reportPrincipal(r.Context(), p)
				next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
			case errors.Is(err, domain.ErrUnavailable):
				logger.WarnContext(r.Context(), "auth provider unavailable", slog.String("error", err.Error()))
				writeError(w, http.StatusServiceUnavailable, "authentication temporarily unavailable")
			default:
				writeError(w, http.StatusUnauthorized, "unauthorized")
			}
		})
	}
}

// AccessToken extracts the bearer token, falling back to the session cookie.
func AccessToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}
