package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the subset of a PathPiper profile this service reads.
type Profile struct {
	ID          uuid.UUID
	Role        Role
	DisplayName string
	CreatedAt   time.Time
}

// Principal is an authenticated caller resolved from an access token.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// CanModerate reports whether the principal may act on the review queue.
func (p Principal) CanModerate() bool {
	return p.Role.CanModerate()
}
