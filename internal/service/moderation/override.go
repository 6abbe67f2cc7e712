package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pathpiper/pathpiper-backend/internal/auth"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// OverrideStatus sets a post's moderation status outside the queue and
// logs the change with an override reason.
func (s *Service) OverrideStatus(ctx context.Context, input OverrideStatusInput) (*domain.Post, error) {
	principal, ok := auth.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if principal.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var post *domain.Post
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		post, err = s.posts.UpdateModerationStatus(txCtx, input.PostID, input.Status)
		if err != nil {
			return fmt.Errorf("update post status: %w", err)
		}

		reviewer := principal.UserID
		_, err = s.logs.Create(txCtx, domain.ModerationLogEntry{
			UserID:          post.AuthorID,
			PostID:          &post.ID,
			ContentType:     domain.ContentTypePost,
			Content:         post.Body,
			Status:          input.Status,
			Reason:          domain.PrefixReason(domain.ReasonPrefixOverride, input.Reason),
			ModeratedAt:     s.now().UTC(),
			HumanReviewerID: &reviewer,
		})
		if err != nil {
			return fmt.Errorf("append moderation log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post status overridden",
		slog.String("post_id", post.ID.String()),
		slog.String("admin_id", principal.UserID.String()),
		slog.String("status", input.Status.String()),
	)
	return post, nil
}
