// Package engagement maintains likes, bookmarks, shares and comments on
// feed posts together with the post counters that mirror them.
package engagement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// postRepo defines the post persistence needed by the engagement service.
type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)
	AdjustCounters(ctx context.Context, id uuid.UUID, delta domain.EngagementCounts) (*domain.Post, error)
	SetCounters(ctx context.Context, id uuid.UUID, counts domain.EngagementCounts) (*domain.Post, error)
}

// edgeRepo defines the like/bookmark/share edge persistence.
type edgeRepo interface {
	HasEdge(ctx context.Context, kind domain.EngagementKind, userID, postID uuid.UUID) (bool, error)
	CountEdges(ctx context.Context, postID uuid.UUID) (domain.EngagementCounts, error)
	InsertEdge(ctx context.Context, kind domain.EngagementKind, userID, postID uuid.UUID) (bool, error)
	DeleteEdge(ctx context.Context, kind domain.EngagementKind, userID, postID uuid.UUID) (bool, error)
	InsertShare(ctx context.Context, userID, postID uuid.UUID) error
}

// commentRepo defines the comment persistence.
type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, int, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	DeleteSubtree(ctx context.Context, postID, commentID uuid.UUID) (int, error)
}

// txManager runs fn inside a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recorder receives engagement events for metrics.
type recorder interface {
	EngagementRecorded(kind domain.EngagementKind, added bool)
}

// Service implements engagement operations.
type Service struct {
	log      *slog.Logger
	posts    postRepo
	edges    edgeRepo
	comments commentRepo
	tx       txManager
	metrics  recorder
	policy   *bluemonday.Policy
}

// NewService creates a new engagement service.
func NewService(
	logger *slog.Logger,
	posts postRepo,
	edges edgeRepo,
	comments commentRepo,
	tx txManager,
	metrics recorder,
) *Service {
	return &Service{
		log:      logger.With("service", "engagement"),
		posts:    posts,
		edges:    edges,
		comments: comments,
		tx:       tx,
		metrics:  metrics,
		policy:   bluemonday.StrictPolicy(),
	}
}
