package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// codeRaiseException is what the moderation_log append-only trigger raises.
const codeRaiseException = "P0001"

// sqlstateErrors maps constraint and trigger failures to domain errors.
// Serialization failures stay unmapped so TxManager can retry them.
var sqlstateErrors = map[string]error{
	"23505":            domain.ErrAlreadyExists, // unique_violation
	"23503":            domain.ErrNotFound,      // foreign_key_violation
	"23514":            domain.ErrValidation,    // check_violation
	"22P02":            domain.ErrValidation,    // invalid_text_representation (bad enum)
	"57014":            domain.ErrUnavailable,   // query_canceled by statement_timeout
	codeRaiseException: domain.ErrInvalidState,
}

// MapError annotates err with the entity and its ID and translates database
// failures into domain sentinels. Context errors keep their identity.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	subject := fmt.Sprintf("%s %s", entity, id)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", subject, err)
	case IsNoRows(err):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target, ok := sqlstateErrors[pgErr.Code]; ok {
			if pgErr.Code == codeRaiseException {
				return fmt.Errorf("%s: %s: %w", subject, pgErr.Message, target)
			}
			return fmt.Errorf("%s: %w", subject, target)
		}
	}
	return fmt.Errorf("%s: %w", subject, err)
}

// IsNoRows reports an empty single-row result from either pgx or scany.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err)
}
