// Package engagement implements the like, bookmark and share edge tables.
// Toggle edges rely on the (user_id, post_id) unique constraint: inserts use
// ON CONFLICT DO NOTHING so the caller learns whether the edge was created.
package engagement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const (
	insertShareSQL = `INSERT INTO post_shares (user_id, post_id) VALUES ($1, $2)`

	countEdgesSQL = `
		SELECT
			(SELECT count(*) FROM post_likes    WHERE post_id = $1),
			(SELECT count(*) FROM post_comments WHERE post_id = $1),
			(SELECT count(*) FROM post_shares   WHERE post_id = $1)`
)

// toggleTables maps toggleable edge kinds to their tables.
var toggleTables = map[domain.EngagementKind]string{
	domain.EngagementLike:     "post_likes",
	domain.EngagementBookmark: "post_bookmarks",
}

// Repo provides engagement edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new engagement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func tableFor(kind domain.EngagementKind) (string, error) {
	table, ok := toggleTables[kind]
	if !ok {
		return "", fmt.Errorf("engagement kind %q is not toggleable", kind)
	}
	return table, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// HasEdge reports whether the user has a toggle edge of kind on the post.
func (r *Repo) HasEdge(ctx context.Context, kind domain.EngagementKind, userID, postID uuid.UUID) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query, args, err := postgres.Builder.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build has %s query: %w", kind, err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "post_"+kind.String(), postID)
	}
	return exists, nil
}

// CountEdges counts the edge rows that back the post's counters.
func (r *Repo) CountEdges(ctx context.Context, postID uuid.UUID) (domain.EngagementCounts, error) {
	var c domain.EngagementCounts
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, countEdgesSQL, postID).
		Scan(&c.Likes, &c.Comments, &c.Shares)
	if err != nil {
		return domain.EngagementCounts{}, postgres.MapError(err, "post", postID)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertEdge creates a toggle edge. It returns false, without error, when
// the edge already exists. A missing post maps to domain.ErrNotFound.
func (r *Repo) InsertEdge(ctx context.Context, kind domain.EngagementKind, userID, postID uuid.UUID) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "post_id").
		Values(userID, postID).
		Suffix("ON CONFLICT (user_id, post_id) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert %s query: %w", kind, err)
	}

	var id uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id)
	if postgres.IsNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "post_"+kind.String(), postID)
	}
	return true, nil
}

// DeleteEdge removes a toggle edge and reports whether a row was deleted.
func (r *Repo) DeleteEdge(ctx context.Context, kind domain.EngagementKind, userID, postID uuid.UUID) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query, args, err := postgres.Builder.
		Delete(table).
		Where("user_id = ? AND post_id = ?", userID, postID).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete %s query: %w", kind, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "post_"+kind.String(), postID)
	}
	return tag.RowsAffected() > 0, nil
}

// InsertShare records one share event.
func (r *Repo) InsertShare(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertShareSQL, userID, postID); err != nil {
		return postgres.MapError(err, "post_share", postID)
	}
	return nil
}
