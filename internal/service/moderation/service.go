// Package moderation implements the human review queue, the moderation
// log and the performance metrics computed from them.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/config"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// queueRepo defines the review queue persistence needed by the service.
type queueRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewQueueItem, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewQueueItem, error)
	List(ctx context.Context, f domain.QueueFilter) ([]domain.ReviewQueueItem, int, error)
	Create(ctx context.Context, item domain.ReviewQueueItem) (*domain.ReviewQueueItem, error)
	MarkReviewed(ctx context.Context, id uuid.UUID, status domain.ReviewStatus, reviewerID uuid.UUID, reason, suggestions *string, at time.Time) (*domain.ReviewQueueItem, error)
	CountByStatus(ctx context.Context) (pending, reviewed int, err error)
	CountHighRiskPending(ctx context.Context, threshold int) (int, error)
	AvgResponseMinutes(ctx context.Context) (int, error)
	TopFlags(ctx context.Context, limit int) ([]domain.FlagCount, error)
	ReviewOutcomes(ctx context.Context, from, to time.Time) ([]domain.ReviewOutcome, error)
}

// logRepo defines the moderation log persistence. It is append-only.
type logRepo interface {
	Create(ctx context.Context, e domain.ModerationLogEntry) (*domain.ModerationLogEntry, error)
	ListSince(ctx context.Context, since time.Time, humanOnly bool, limit int) ([]domain.ModerationLogEntry, error)
	ListByQueueItem(ctx context.Context, queueItemID uuid.UUID) ([]domain.ModerationLogEntry, error)
	StatusDistribution(ctx context.Context, from, to time.Time) (map[domain.ModerationStatus]int, error)
	CountHighRisk(ctx context.Context, from, to time.Time, threshold int) (int, error)
}

// postRepo defines the post status updates made by moderation.
type postRepo interface {
	UpdateModerationStatus(ctx context.Context, id uuid.UUID, status domain.ModerationStatus) (*domain.Post, error)
}

// txManager runs fn inside a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recorder receives moderation events for metrics.
type recorder interface {
	DecisionRecorded(action domain.ReviewAction)
	AutomatedRecorded(status domain.ModerationStatus, queued bool)
	PerformanceObserved(report domain.PerformanceReport)
}

// Service implements moderation operations.
type Service struct {
	log     *slog.Logger
	queue   queueRepo
	logs    logRepo
	posts   postRepo
	tx      txManager
	metrics recorder
	cfg     config.ModerationConfig
	now     func() time.Time
}

// NewService creates a new moderation service.
func NewService(
	logger *slog.Logger,
	queue queueRepo,
	logs logRepo,
	posts postRepo,
	tx txManager,
	metrics recorder,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "moderation"),
		queue:   queue,
		logs:    logs,
		posts:   posts,
		tx:      tx,
		metrics: metrics,
		cfg:     cfg,
		now:     time.Now,
	}
}
