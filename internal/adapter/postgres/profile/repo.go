// Package profile reads and updates PathPiper profile roles.
package profile

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const (
	getByIDSQL = `SELECT id, role, display_name, created_at FROM profiles WHERE id = $1`
	setRoleSQL = `UPDATE profiles SET role = $2 WHERE id = $1 AND role <> $2`
)

// Repo provides access to profiles.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a profile by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var (
		p    domain.Profile
		role string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, getByIDSQL, id).
		Scan(&p.ID, &role, &p.DisplayName, &p.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	p.Role = domain.Role(role)
	return &p, nil
}

// SetRole changes a profile's role. It reports false when the profile
// already had that role.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (bool, error) {
	if !role.IsValid() || role == domain.RoleService {
		return false, domain.NewValidationError("role", "invalid value")
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setRoleSQL, id, string(role))
	if err != nil {
		return false, postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}
