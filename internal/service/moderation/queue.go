package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// ListQueue returns review queue items, highest risk first.
func (s *Service) ListQueue(ctx context.Context, input ListQueueInput) (QueuePage, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return QueuePage{}, domain.NewValidationError("status", "invalid value")
	}
	if input.ContentType != nil && !input.ContentType.IsValid() {
		return QueuePage{}, domain.NewValidationError("contentType", "invalid value")
	}
	if input.MinRisk != nil && *input.MinRisk < 0 {
		return QueuePage{}, domain.NewValidationError("minRisk", "must be non-negative")
	}
	if input.Offset < 0 {
		return QueuePage{}, domain.NewValidationError("offset", "must be non-negative")
	}

	items, total, err := s.queue.List(ctx, domain.QueueFilter{
		Status:      input.Status,
		ContentType: input.ContentType,
		MinRisk:     input.MinRisk,
		Limit:       s.pageSize(input.Limit),
		Offset:      input.Offset,
	})
	if err != nil {
		return QueuePage{}, fmt.Errorf("list review queue: %w", err)
	}
	if items == nil {
		items = []domain.ReviewQueueItem{}
	}
	return QueuePage{Items: items, Total: total}, nil
}

// GetItem returns a queue item with every log entry recorded for it.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (ItemDetail, error) {
	item, err := s.queue.GetByID(ctx, id)
	if err != nil {
		return ItemDetail{}, fmt.Errorf("get review item: %w", err)
	}
	history, err := s.logs.ListByQueueItem(ctx, id)
	if err != nil {
		return ItemDetail{}, fmt.Errorf("list item history: %w", err)
	}
	if history == nil {
		history = []domain.ModerationLogEntry{}
	}
	return ItemDetail{Item: item, History: history}, nil
}

// ListLogs returns log entries recorded at or after input.Since, newest first.
// A zero Since uses the configured default window.
func (s *Service) ListLogs(ctx context.Context, input ListLogsInput) ([]domain.ModerationLogEntry, error) {
	since := input.Since
	if since.IsZero() {
		since = s.now().UTC().Add(-s.cfg.DefaultWindow)
	}

	entries, err := s.logs.ListSince(ctx, since, input.HumanOnly, s.pageSize(input.Limit))
	if err != nil {
		return nil, fmt.Errorf("list moderation log: %w", err)
	}
	if entries == nil {
		entries = []domain.ModerationLogEntry{}
	}
	return entries, nil
}

// pageSize clamps a requested limit to the configured bounds.
func (s *Service) pageSize(limit int) int {
	switch {
	case limit <= 0:
		return s.cfg.QueuePageSize
	case limit > s.cfg.QueueMaxPageSize:
		return s.cfg.QueueMaxPageSize
	}
	return limit
}
