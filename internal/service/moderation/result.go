package moderation

import "github.com/pathpiper/pathpiper-backend/internal/domain"

// QueuePage is one page of review queue items.
type QueuePage struct {
	Items []domain.ReviewQueueItem
	Total int
}

// ItemDetail is a queue item with its moderation history.
type ItemDetail struct {
	Item    *domain.ReviewQueueItem
	History []domain.ModerationLogEntry
}

// AutomatedResult is the outcome of ingesting an automated verdict.
// QueueItem is nil unless the verdict asked for human review.
type AutomatedResult struct {
	Entry     *domain.ModerationLogEntry
	QueueItem *domain.ReviewQueueItem
}

// PerformanceResult is a metrics report with its recommendations.
type PerformanceResult struct {
	Report          domain.PerformanceReport
	Recommendations []string
}
