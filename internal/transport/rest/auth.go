package rest

import (
	"context"
	"net/http"

	"github.com/pathpiper/pathpiper-backend/internal/transport/middleware"
)

type sessionService interface {
	Logout(ctx context.Context, token string)
}

// AuthHandler serves session endpoints. Sign-in happens at Supabase.
type AuthHandler struct {
	svc sessionService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc sessionService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Logout handles POST /auth/logout. It drops the cached principal, revokes
// the session when possible and clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Logout(r.Context(), middleware.AccessToken(r))

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
