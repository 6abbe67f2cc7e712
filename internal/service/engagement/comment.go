package engagement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/auth"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// CreateComment sanitizes and stores a comment and bumps comments_count.
// A reply's parent must belong to the same post.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (CommentResult, error) {
	principal, ok := auth.PrincipalFromCtx(ctx)
	if !ok || principal.UserID == uuid.Nil {
		return CommentResult{}, domain.ErrUnauthorized
	}

	input.Content = strings.TrimSpace(s.policy.Sanitize(input.Content))
	if err := input.Validate(); err != nil {
		return CommentResult{}, err
	}

	var res CommentResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.posts.GetByID(txCtx, input.PostID); err != nil {
			return fmt.Errorf("get post: %w", err)
		}

		if input.ParentID != nil {
			parent, err := s.comments.GetByID(txCtx, *input.ParentID)
			if err != nil {
				return fmt.Errorf("get parent comment: %w", err)
			}
			if parent.PostID != input.PostID {
				return domain.NewValidationError("parent_id", "belongs to another post")
			}
		}

		created, err := s.comments.Create(txCtx, domain.Comment{
			PostID:   input.PostID,
			UserID:   principal.UserID,
			ParentID: input.ParentID,
			Content:  input.Content,
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		updated, err := s.posts.AdjustCounters(txCtx, input.PostID, domain.EngagementCounts{Comments: 1})
		if err != nil {
			return fmt.Errorf("adjust counters: %w", err)
		}

		res = CommentResult{Comment: created, CommentCount: updated.CommentsCount}
		return nil
	})
	if err != nil {
		return CommentResult{}, err
	}

	s.metrics.EngagementRecorded(domain.EngagementComment, true)
	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", principal.UserID.String()),
		slog.String("post_id", input.PostID.String()),
		slog.String("comment_id", res.Comment.ID.String()),
	)

	return res, nil
}

// ListComments returns a page of the post's comments, oldest first.
func (s *Service) ListComments(ctx context.Context, input ListCommentsInput) (CommentPage, error) {
	if err := input.Validate(); err != nil {
		return CommentPage{}, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultCommentLimit
	}

	if _, err := s.posts.GetByID(ctx, input.PostID); err != nil {
		return CommentPage{}, fmt.Errorf("get post: %w", err)
	}

	comments, total, err := s.comments.ListByPost(ctx, input.PostID, limit, input.Offset)
	if err != nil {
		return CommentPage{}, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return CommentPage{Comments: comments, Total: total}, nil
}

// DeleteComment removes a comment and its replies. Only the author or a
// moderator may delete. comments_count drops by the number of rows removed.
func (s *Service) DeleteComment(ctx context.Context, postID, commentID uuid.UUID) (CommentResult, error) {
	principal, ok := auth.PrincipalFromCtx(ctx)
	if !ok {
		return CommentResult{}, domain.ErrUnauthorized
	}

	var (
		res     CommentResult
		removed int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByID(txCtx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}
		if c.PostID != postID {
			return fmt.Errorf("comment %s on post %s: %w", commentID, postID, domain.ErrNotFound)
		}
		if c.UserID != principal.UserID && !principal.CanModerate() {
			return domain.ErrForbidden
		}

		removed, err = s.comments.DeleteSubtree(txCtx, postID, commentID)
		if err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		if removed == 0 {
			return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
		}

		updated, err := s.posts.AdjustCounters(txCtx, postID, domain.EngagementCounts{Comments: -removed})
		if err != nil {
			return fmt.Errorf("adjust counters: %w", err)
		}
		res = CommentResult{CommentCount: updated.CommentsCount}
		return nil
	})
	if err != nil {
		return CommentResult{}, err
	}

	s.metrics.EngagementRecorded(domain.EngagementComment, false)
	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", principal.UserID.String()),
		slog.String("post_id", postID.String()),
		slog.String("comment_id", commentID.String()),
		slog.Int("removed", removed),
	)

	return res, nil
}
