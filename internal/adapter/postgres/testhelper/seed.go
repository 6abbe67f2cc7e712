package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile inserts a profile with the given role.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Profile {
	t.Helper()

	p := domain.Profile{
		ID:          uuid.New(),
		Role:        role,
		DisplayName: "Test " + string(role) + " " + uniqueSuffix(),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, role, display_name, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, string(p.Role), p.DisplayName, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return p
}

// SeedPost inserts a post in pending_review with zero counters.
func SeedPost(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Post {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Post{
		ID:               uuid.New(),
		AuthorID:         authorID,
		Body:             "post body " + uniqueSuffix(),
		ModerationStatus: domain.ModerationStatusPendingReview,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO feed_posts (id, author_id, body, moderation_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.AuthorID, p.Body, string(p.ModerationStatus), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}
	return p
}

// SeedQueueItem inserts a pending review queue item. postID may be nil.
func SeedQueueItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, postID *uuid.UUID, riskScore int, flags ...string) domain.ReviewQueueItem {
	t.Helper()

	if flags == nil {
		flags = []string{}
	}
	item := domain.ReviewQueueItem{
		ID:           uuid.New(),
		PostID:       postID,
		UserID:       userID,
		ContentType:  domain.ContentTypePost,
		Content:      "flagged content " + uniqueSuffix(),
		RiskScore:    riskScore,
		Flags:        flags,
		ReviewStatus: domain.ReviewStatusPending,
		QueuedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO human_review_queue (id, post_id, user_id, content_type, content, risk_score, flags, review_status, queued_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.PostID, item.UserID, string(item.ContentType), item.Content,
		item.RiskScore, item.Flags, string(item.ReviewStatus), item.QueuedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQueueItem: %v", err)
	}
	return item
}

// CountRows returns the number of rows in table matching where.
// table and where must be literals from test code.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE "+where, args...).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
