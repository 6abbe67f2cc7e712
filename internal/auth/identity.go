package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is what a token verifier learns from an access token.
// Service identities belong to backend callers and carry no user.
// A zero ExpiresAt means the token carries no expiry.
type Identity struct {
	UserID    uuid.UUID
	Service   bool
	ExpiresAt time.Time
}

// TokenExpiry reads the exp claim without checking the signature. Callers
// must have the token verified elsewhere. Unparseable tokens give zero.
func TokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// Supabase role claim values.
const (
	ClaimRoleAuthenticated = "authenticated"
	ClaimRoleService       = "service_role"
)
