// Package comment implements the post comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const columns = "id, post_id, user_id, parent_id, content, created_at"

const (
	insertSQL = `
		INSERT INTO post_comments (post_id, user_id, parent_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns

	getByIDSQL = `SELECT ` + columns + ` FROM post_comments WHERE id = $1`

	// deleteSubtreeSQL removes a comment and all of its replies so the
	// caller can decrement the counter by the exact number of rows.
	deleteSubtreeSQL = `
		WITH RECURSIVE subtree AS (
			SELECT id FROM post_comments WHERE id = $1 AND post_id = $2
			UNION ALL
			SELECT c.id FROM post_comments c JOIN subtree s ON c.parent_id = s.id
		)
		DELETE FROM post_comments WHERE id IN (SELECT id FROM subtree)`
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a comment by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var row commentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	c := row.toDomain()
	return &c, nil
}

// ListByPost returns a page of a post's comments, oldest first, and the
// total number of comments on the post.
func (r *Repo) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Select(columns).
		From("post_comments").
		Where("post_id = ?", postID).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list comments query: %w", err)
	}

	var rows []commentRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list comments for post %s: %w", postID, err)
	}

	countQuery, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("post_comments").
		Where("post_id = ?", postID).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count comments query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count comments for post %s: %w", postID, err)
	}

	comments := make([]domain.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toDomain()
	}
	return comments, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a comment and returns it with generated fields.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	var row commentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL,
		c.PostID, c.UserID, c.ParentID, c.Content,
	)
	if err != nil {
		return nil, postgres.MapError(err, "post", c.PostID)
	}
	created := row.toDomain()
	return &created, nil
}

// DeleteSubtree deletes the comment and its replies, returning the number
// of rows removed. Zero means the comment does not belong to the post.
func (r *Repo) DeleteSubtree(ctx context.Context, postID, commentID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSubtreeSQL, commentID, postID)
	if err != nil {
		return 0, postgres.MapError(err, "comment", commentID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type commentRow struct {
	ID        uuid.UUID  `db:"id"`
	PostID    uuid.UUID  `db:"post_id"`
	UserID    uuid.UUID  `db:"user_id"`
	ParentID  *uuid.UUID `db:"parent_id"`
	Content   string     `db:"content"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		PostID:    r.PostID,
		UserID:    r.UserID,
		ParentID:  r.ParentID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}
