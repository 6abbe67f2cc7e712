package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// IngestAutomated records a classifier verdict. Every verdict is logged.
// Verdicts that need review enqueue a pending item and hold the post in
// pending_review; the rest apply their status to the post directly.
func (s *Service) IngestAutomated(ctx context.Context, input AutomatedDecisionInput) (AutomatedResult, error) {
	if err := input.Validate(); err != nil {
		return AutomatedResult{}, err
	}

	postStatus := input.Status
	if input.NeedsReview {
		postStatus = domain.ModerationStatusPendingReview
	}

	var res AutomatedResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry := domain.ModerationLogEntry{
			UserID:      input.UserID,
			PostID:      input.PostID,
			ContentType: input.ContentType,
			Content:     input.Content,
			Status:      input.Status,
			RiskScore:   input.RiskScore,
			Flags:       input.Flags,
			Reason:      domain.PrefixReason(domain.ReasonPrefixAutomated, input.Reason),
			ModeratedAt: s.now().UTC(),
		}

		if input.NeedsReview {
			item, err := s.queue.Create(txCtx, domain.ReviewQueueItem{
				PostID:      input.PostID,
				UserID:      input.UserID,
				ContentType: input.ContentType,
				Content:     input.Content,
				RiskScore:   input.RiskScore,
				Flags:       input.Flags,
			})
			if err != nil {
				return fmt.Errorf("enqueue review item: %w", err)
			}
			res.QueueItem = item
			entry.QueueItemID = &item.ID
		}

		created, err := s.logs.Create(txCtx, entry)
		if err != nil {
			return fmt.Errorf("append moderation log: %w", err)
		}
		res.Entry = created

		if input.PostID != nil {
			if _, err := s.posts.UpdateModerationStatus(txCtx, *input.PostID, postStatus); err != nil {
				return fmt.Errorf("update post status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return AutomatedResult{}, err
	}

	s.metrics.AutomatedRecorded(input.Status, input.NeedsReview)
	s.log.InfoContext(ctx, "automated verdict recorded",
		slog.String("user_id", input.UserID.String()),
		slog.String("status", input.Status.String()),
		slog.Int("risk_score", input.RiskScore),
		slog.Bool("queued", input.NeedsReview),
	)

	return res, nil
}
