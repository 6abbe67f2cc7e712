// Package post implements the feed post repository using PostgreSQL.
// Counter columns are only ever changed with relative SQL updates so that
// concurrent writers never lose increments.
package post

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const columns = `id, author_id, body, moderation_status, likes_count, comments_count,
	shares_count, engagement_score, created_at, updated_at`

const (
	getByIDSQL = `SELECT ` + columns + ` FROM feed_posts WHERE id = $1`

	updateStatusSQL = `
		UPDATE feed_posts SET moderation_status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	adjustCountersSQL = `
		UPDATE feed_posts SET
			likes_count      = likes_count + $2,
			comments_count   = comments_count + $3,
			shares_count     = shares_count + $4,
			engagement_score = engagement_score + $5,
			updated_at       = CASE WHEN $2 = 0 AND $3 = 0 AND $4 = 0 THEN updated_at ELSE now() END
		WHERE id = $1
		RETURNING ` + columns

	setCountersSQL = `
		UPDATE feed_posts SET
			likes_count      = $2,
			comments_count   = $3,
			shares_count     = $4,
			engagement_score = $5,
			updated_at       = now()
		WHERE id = $1
		RETURNING ` + columns

	listIDsSQL = `SELECT id FROM feed_posts WHERE id > $1 ORDER BY id LIMIT $2`
)

// Repo provides feed post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a post by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanPost(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

// GetByIDs returns the posts with the given IDs in no particular order.
// Unknown IDs are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := postgres.Builder.
		Select(columns).
		From("feed_posts").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build posts by ids query: %w", err)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get posts by ids: %w", err)
	}

	posts := make([]domain.Post, len(rows))
	for i, row := range rows {
		posts[i] = row.toDomain()
	}
	return posts, nil
}

// ListIDs returns up to limit post IDs greater than after, in ID order.
// Pass uuid.Nil to start from the beginning.
func (r *Repo) ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listIDsSQL, after, limit)
	if err != nil {
		return nil, fmt.Errorf("list post ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan post id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list post ids: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpdateModerationStatus sets the post's moderation status.
// Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) UpdateModerationStatus(ctx context.Context, id uuid.UUID, status domain.ModerationStatus) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanPost(q.QueryRow(ctx, updateStatusSQL, id, string(status)))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

// AdjustCounters applies a relative change to the engagement counters and
// moves the engagement score by the weighted delta.
func (r *Repo) AdjustCounters(ctx context.Context, id uuid.UUID, delta domain.EngagementCounts) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanPost(q.QueryRow(ctx, adjustCountersSQL,
		id, delta.Likes, delta.Comments, delta.Shares, delta.Score(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

// SetCounters overwrites the engagement counters with absolute values.
func (r *Repo) SetCounters(ctx context.Context, id uuid.UUID, counts domain.EngagementCounts) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanPost(q.QueryRow(ctx, setCountersSQL,
		id, counts.Likes, counts.Comments, counts.Shares, counts.Score(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type postRow struct {
	ID               uuid.UUID `db:"id"`
	AuthorID         uuid.UUID `db:"author_id"`
	Body             string    `db:"body"`
	ModerationStatus string    `db:"moderation_status"`
	LikesCount       int       `db:"likes_count"`
	CommentsCount    int       `db:"comments_count"`
	SharesCount      int       `db:"shares_count"`
	EngagementScore  int       `db:"engagement_score"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r postRow) toDomain() domain.Post {
	return domain.Post{
		ID:               r.ID,
		AuthorID:         r.AuthorID,
		Body:             r.Body,
		ModerationStatus: domain.ModerationStatus(r.ModerationStatus),
		LikesCount:       r.LikesCount,
		CommentsCount:    r.CommentsCount,
		SharesCount:      r.SharesCount,
		EngagementScore:  r.EngagementScore,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var r postRow
	err := row.Scan(
		&r.ID, &r.AuthorID, &r.Body, &r.ModerationStatus,
		&r.LikesCount, &r.CommentsCount, &r.SharesCount, &r.EngagementScore,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p := r.toDomain()
	return &p, nil
}
