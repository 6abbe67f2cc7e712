// Package reviewqueue implements the human review queue repository.
// Items leave the pending state exactly once; the guarded UPDATE in
// MarkReviewed is the serialization point for concurrent decisions.
package reviewqueue

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const columns = `id, post_id, user_id, content_type, content, risk_score, flags, review_status,
	queued_at, reviewed_at, reviewer_id, reviewer_reason, reviewer_suggestions`

const (
	insertSQL = `
		INSERT INTO human_review_queue (post_id, user_id, content_type, content, risk_score, flags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	getByIDSQL = `SELECT ` + columns + ` FROM human_review_queue WHERE id = $1`

	getByIDForUpdateSQL = getByIDSQL + ` FOR UPDATE`

	markReviewedSQL = `
		UPDATE human_review_queue SET
			review_status        = $2,
			reviewed_at          = $3,
			reviewer_id          = $4,
			reviewer_reason      = $5,
			reviewer_suggestions = $6
		WHERE id = $1 AND review_status = 'pending'
		RETURNING ` + columns

	countByStatusSQL = `
		SELECT
			count(*) FILTER (WHERE review_status = 'pending'),
			count(*) FILTER (WHERE review_status <> 'pending')
		FROM human_review_queue`

	countHighRiskPendingSQL = `
		SELECT count(*) FROM human_review_queue
		WHERE review_status = 'pending' AND risk_score >= $1`

	avgResponseMinutesSQL = `
		SELECT COALESCE(round(avg(extract(epoch FROM reviewed_at - queued_at)) / 60), 0)::int
		FROM human_review_queue
		WHERE reviewed_at IS NOT NULL`

	topFlagsSQL = `
		SELECT flag, count(*) AS count
		FROM human_review_queue, unnest(flags) AS flag
		GROUP BY flag
		ORDER BY count DESC, flag ASC
		LIMIT $1`

	// reviewOutcomesSQL pairs each decision in the window with the first
	// automated verdict logged for the same item.
	reviewOutcomesSQL = `
		SELECT q.review_status, q.risk_score, a.status AS automated_status
		FROM human_review_queue q
		LEFT JOIN LATERAL (
			SELECT l.status FROM moderation_log l
			WHERE l.queue_item_id = q.id AND l.human_reviewer_id IS NULL
			ORDER BY l.moderated_at ASC
			LIMIT 1
		) a ON true
		WHERE q.review_status <> 'pending'
		  AND q.reviewed_at >= $1 AND q.reviewed_at < $2`
)

// Repo provides review queue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review queue repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a queue item by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewQueueItem, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetByIDForUpdate returns a queue item and locks its row until the
// surrounding transaction ends. It must run inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewQueueItem, error) {
	return r.get(ctx, getByIDForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, query string, id uuid.UUID) (*domain.ReviewQueueItem, error) {
	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, id); err != nil {
		return nil, postgres.MapError(err, "review_item", id)
	}
	item := row.toDomain()
	return &item, nil
}

// List returns a page of queue items matching the filter, newest first,
// with the total number of matches.
func (r *Repo) List(ctx context.Context, f domain.QueueFilter) ([]domain.ReviewQueueItem, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{}
	if f.Status != nil {
		where = append(where, sq.Eq{"review_status": string(*f.Status)})
	}
	if f.ContentType != nil {
		where = append(where, sq.Eq{"content_type": string(*f.ContentType)})
	}
	if f.MinRisk != nil {
		where = append(where, sq.GtOrEq{"risk_score": *f.MinRisk})
	}

	query, args, err := postgres.Builder.
		Select(columns).
		From("human_review_queue").
		Where(where).
		OrderBy("risk_score DESC", "queued_at ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list review items query: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list review items: %w", err)
	}

	countQuery, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("human_review_queue").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count review items query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count review items: %w", err)
	}

	items := make([]domain.ReviewQueueItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, total, nil
}

// CountByStatus returns the number of pending and reviewed items.
func (r *Repo) CountByStatus(ctx context.Context) (pending, reviewed int, err error) {
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countByStatusSQL).Scan(&pending, &reviewed)
	if err != nil {
		return 0, 0, fmt.Errorf("count review items by status: %w", err)
	}
	return pending, reviewed, nil
}

// CountHighRiskPending counts pending items with risk_score >= threshold.
func (r *Repo) CountHighRiskPending(ctx context.Context, threshold int) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countHighRiskPendingSQL, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("count high risk review items: %w", err)
	}
	return n, nil
}

// AvgResponseMinutes returns the mean time from queueing to decision,
// rounded to whole minutes. Zero when nothing was reviewed.
func (r *Repo) AvgResponseMinutes(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, avgResponseMinutesSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("average review response time: %w", err)
	}
	return n, nil
}

// TopFlags returns the most frequent flags across all queue items.
func (r *Repo) TopFlags(ctx context.Context, limit int) ([]domain.FlagCount, error) {
	var rows []struct {
		Flag  string `db:"flag"`
		Count int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, topFlagsSQL, limit); err != nil {
		return nil, fmt.Errorf("top review flags: %w", err)
	}

	flags := make([]domain.FlagCount, len(rows))
	for i, row := range rows {
		flags[i] = domain.FlagCount{Flag: row.Flag, Count: row.Count}
	}
	return flags, nil
}

// ReviewOutcomes returns the decisions made in [from, to) paired with the
// automated verdict that queued each item.
func (r *Repo) ReviewOutcomes(ctx context.Context, from, to time.Time) ([]domain.ReviewOutcome, error) {
	var rows []struct {
		ReviewStatus    string  `db:"review_status"`
		RiskScore       int     `db:"risk_score"`
		AutomatedStatus *string `db:"automated_status"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, reviewOutcomesSQL, from, to); err != nil {
		return nil, fmt.Errorf("review outcomes: %w", err)
	}

	outcomes := make([]domain.ReviewOutcome, len(rows))
	for i, row := range rows {
		outcomes[i] = domain.ReviewOutcome{
			HumanStatus: domain.ReviewStatus(row.ReviewStatus),
			RiskScore:   row.RiskScore,
		}
		if row.AutomatedStatus != nil {
			s := domain.ModerationStatus(*row.AutomatedStatus)
			outcomes[i].AutomatedStatus = &s
		}
	}
	return outcomes, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create enqueues a pending item. A second pending item for the same post
// maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, item domain.ReviewQueueItem) (*domain.ReviewQueueItem, error) {
	flags := item.Flags
	if flags == nil {
		flags = []string{}
	}

	var row itemRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL,
		item.PostID, item.UserID, string(item.ContentType), item.Content, item.RiskScore, flags,
	)
	if err != nil {
		return nil, postgres.MapError(err, "review_item", item.UserID)
	}
	created := row.toDomain()
	return &created, nil
}

// MarkReviewed moves a pending item to its terminal status.
// Returns domain.ErrConflict if the item is no longer pending.
func (r *Repo) MarkReviewed(
	ctx context.Context,
	id uuid.UUID,
	status domain.ReviewStatus,
	reviewerID uuid.UUID,
	reason, suggestions *string,
	at time.Time,
) (*domain.ReviewQueueItem, error) {
	var row itemRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, markReviewedSQL,
		id, string(status), at, reviewerID, reason, suggestions,
	)
	if postgres.IsNoRows(err) {
		return nil, fmt.Errorf("review_item %s: not pending: %w", id, domain.ErrConflict)
	}
	if err != nil {
		return nil, postgres.MapError(err, "review_item", id)
	}
	item := row.toDomain()
	return &item, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type itemRow struct {
	ID                  uuid.UUID  `db:"id"`
	PostID              *uuid.UUID `db:"post_id"`
	UserID              uuid.UUID  `db:"user_id"`
	ContentType         string     `db:"content_type"`
	Content             string     `db:"content"`
	RiskScore           int        `db:"risk_score"`
	Flags               []string   `db:"flags"`
	ReviewStatus        string     `db:"review_status"`
	QueuedAt            time.Time  `db:"queued_at"`
	ReviewedAt          *time.Time `db:"reviewed_at"`
	ReviewerID          *uuid.UUID `db:"reviewer_id"`
	ReviewerReason      *string    `db:"reviewer_reason"`
	ReviewerSuggestions *string    `db:"reviewer_suggestions"`
}

func (r itemRow) toDomain() domain.ReviewQueueItem {
	return domain.ReviewQueueItem{
		ID:                  r.ID,
		PostID:              r.PostID,
		UserID:              r.UserID,
		ContentType:         domain.ContentType(r.ContentType),
		Content:             r.Content,
		RiskScore:           r.RiskScore,
		Flags:               r.Flags,
		ReviewStatus:        domain.ReviewStatus(r.ReviewStatus),
		QueuedAt:            r.QueuedAt,
		ReviewedAt:          r.ReviewedAt,
		ReviewerID:          r.ReviewerID,
		ReviewerReason:      r.ReviewerReason,
		ReviewerSuggestions: r.ReviewerSuggestions,
	}
}
