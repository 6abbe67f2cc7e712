// Package modlog implements the append-only moderation log using PostgreSQL.
// The table rejects UPDATE and DELETE with a trigger; this package exposes
// inserts and reads only.
package modlog

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const columns = `id, user_id, post_id, queue_item_id, content_type, content, status, risk_score,
	flags, reason, moderated_at, human_reviewer_id`

const (
	insertSQL = `
		INSERT INTO moderation_log
			(user_id, post_id, queue_item_id, content_type, content, status, risk_score, flags, reason, moderated_at, human_reviewer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + columns

	listByQueueItemSQL = `
		SELECT ` + columns + ` FROM moderation_log
		WHERE queue_item_id = $1
		ORDER BY moderated_at ASC, id ASC`

	statusDistributionSQL = `
		SELECT status, count(*) AS count
		FROM moderation_log
		WHERE moderated_at >= $1 AND moderated_at < $2
		GROUP BY status`

	countHighRiskSQL = `
		SELECT count(*) FROM moderation_log
		WHERE moderated_at >= $1 AND moderated_at < $2 AND risk_score >= $3`
)

// Repo provides moderation log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new moderation log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends an entry. The content snapshot is truncated to
// domain.MaxLogSnapshotLength. A zero ModeratedAt uses the current time.
// A second human entry for the same queue item maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e domain.ModerationLogEntry) (*domain.ModerationLogEntry, error) {
	if e.ModeratedAt.IsZero() {
		e.ModeratedAt = time.Now().UTC()
	}
	flags := e.Flags
	if flags == nil {
		flags = []string{}
	}

	var row entryRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, insertSQL,
		e.UserID, e.PostID, e.QueueItemID, string(e.ContentType),
		domain.TruncateSnapshot(e.Content, domain.MaxLogSnapshotLength),
		string(e.Status), e.RiskScore, flags, e.Reason, e.ModeratedAt, e.HumanReviewerID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "moderation_log", e.UserID)
	}
	created := row.toDomain()
	return &created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListSince returns up to limit entries with moderated_at >= since, newest first.
// If humanOnly is set, automated entries are skipped.
func (r *Repo) ListSince(ctx context.Context, since time.Time, humanOnly bool, limit int) ([]domain.ModerationLogEntry, error) {
	b := postgres.Builder.
		Select(columns).
		From("moderation_log").
		Where("moderated_at >= ?", since).
		OrderBy("moderated_at DESC", "id DESC").
		Limit(uint64(limit))
	if humanOnly {
		b = b.Where("human_reviewer_id IS NOT NULL")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list moderation log query: %w", err)
	}

	return r.selectEntries(ctx, query, args...)
}

// ListByQueueItem returns every entry recorded for a queue item, oldest first.
func (r *Repo) ListByQueueItem(ctx context.Context, queueItemID uuid.UUID) ([]domain.ModerationLogEntry, error) {
	return r.selectEntries(ctx, listByQueueItemSQL, queueItemID)
}

// StatusDistribution counts entries per status in [from, to).
func (r *Repo) StatusDistribution(ctx context.Context, from, to time.Time) (map[domain.ModerationStatus]int, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, statusDistributionSQL, from, to); err != nil {
		return nil, fmt.Errorf("moderation status distribution: %w", err)
	}

	dist := make(map[domain.ModerationStatus]int, len(rows))
	for _, row := range rows {
		dist[domain.ModerationStatus(row.Status)] = row.Count
	}
	return dist, nil
}

// CountHighRisk counts entries in [from, to) with risk_score >= threshold.
func (r *Repo) CountHighRisk(ctx context.Context, from, to time.Time, threshold int) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countHighRiskSQL, from, to, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("count high risk log entries: %w", err)
	}
	return n, nil
}

func (r *Repo) selectEntries(ctx context.Context, query string, args ...any) ([]domain.ModerationLogEntry, error) {
	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select moderation log entries: %w", err)
	}

	entries := make([]domain.ModerationLogEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type entryRow struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	PostID          *uuid.UUID `db:"post_id"`
	QueueItemID     *uuid.UUID `db:"queue_item_id"`
	ContentType     string     `db:"content_type"`
	Content         string     `db:"content"`
	Status          string     `db:"status"`
	RiskScore       int        `db:"risk_score"`
	Flags           []string   `db:"flags"`
	Reason          string     `db:"reason"`
	ModeratedAt     time.Time  `db:"moderated_at"`
	HumanReviewerID *uuid.UUID `db:"human_reviewer_id"`
}

func (r entryRow) toDomain() domain.ModerationLogEntry {
	return domain.ModerationLogEntry{
		ID:              r.ID,
		UserID:          r.UserID,
		PostID:          r.PostID,
		QueueItemID:     r.QueueItemID,
		ContentType:     domain.ContentType(r.ContentType),
		Content:         r.Content,
		Status:          domain.ModerationStatus(r.Status),
		RiskScore:       r.RiskScore,
		Flags:           r.Flags,
		Reason:          r.Reason,
		ModeratedAt:     r.ModeratedAt,
		HumanReviewerID: r.HumanReviewerID,
	}
}
