package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pathpiper/pathpiper-backend/internal/auth"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// SubmitDecision records a moderator's approve or reject on a pending item.
// The queue transition, the log entry and the post status change commit
// together or not at all. Deciding a terminal item returns domain.ErrConflict.
func (s *Service) SubmitDecision(ctx context.Context, input SubmitDecisionInput) (*domain.ReviewQueueItem, error) {
	principal, ok := auth.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !principal.CanModerate() {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		now     = s.now().UTC()
		status  = input.Action.ModerationStatus()
		updated *domain.ReviewQueueItem
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.queue.GetByIDForUpdate(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get review item: %w", err)
		}
		if item.ReviewStatus.IsTerminal() {
			return fmt.Errorf("review item %s already %s: %w", item.ID, item.ReviewStatus, domain.ErrConflict)
		}

		updated, err = s.queue.MarkReviewed(txCtx, item.ID, input.Action.ReviewStatus(),
			principal.UserID, input.Reason, input.Suggestions, now)
		if err != nil {
			return fmt.Errorf("mark reviewed: %w", err)
		}

		reviewer := principal.UserID
		_, err = s.logs.Create(txCtx, domain.ModerationLogEntry{
			UserID:          item.UserID,
			PostID:          item.PostID,
			QueueItemID:     &item.ID,
			ContentType:     item.ContentType,
			Content:         item.Content,
			Status:          status,
			RiskScore:       item.RiskScore,
			Flags:           item.Flags,
			Reason:          domain.PrefixReason(domain.ReasonPrefixHumanReview, deref(input.Reason)),
			ModeratedAt:     now,
			HumanReviewerID: &reviewer,
		})
		if err != nil {
			return fmt.Errorf("append moderation log: %w", err)
		}

		if item.PostID != nil {
			if _, err := s.posts.UpdateModerationStatus(txCtx, *item.PostID, status); err != nil {
				return fmt.Errorf("update post status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.DecisionRecorded(input.Action)
	s.log.InfoContext(ctx, "review decision recorded",
		slog.String("item_id", updated.ID.String()),
		slog.String("reviewer_id", principal.UserID.String()),
		slog.String("action", input.Action.String()),
	)

	return updated, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
