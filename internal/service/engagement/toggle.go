package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
	"github.com/pathpiper/pathpiper-backend/pkg/ctxutil"
)

// ToggleLike likes the post for the caller, or removes the like if it exists.
// The edge row and likes_count change in one transaction.
func (s *Service) ToggleLike(ctx context.Context, postID uuid.UUID) (ToggleResult, error) {
	return s.toggle(ctx, domain.EngagementLike, postID)
}

// ToggleBookmark bookmarks the post for the caller, or removes the bookmark.
func (s *Service) ToggleBookmark(ctx context.Context, postID uuid.UUID) (ToggleResult, error) {
	return s.toggle(ctx, domain.EngagementBookmark, postID)
}

func (s *Service) toggle(ctx context.Context, kind domain.EngagementKind, postID uuid.UUID) (ToggleResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ToggleResult{}, domain.ErrUnauthorized
	}

	var res ToggleResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.posts.GetByID(txCtx, postID); err != nil {
			return fmt.Errorf("get post: %w", err)
		}

		inserted, err := s.edges.InsertEdge(txCtx, kind, userID, postID)
		if err != nil {
			return fmt.Errorf("insert %s: %w", kind, err)
		}

		delta := 1
		if !inserted {
			deleted, err := s.edges.DeleteEdge(txCtx, kind, userID, postID)
			if err != nil {
				return fmt.Errorf("delete %s: %w", kind, err)
			}
			delta = 0
			if deleted {
				delta = -1
			}
		}
		res.Active = inserted

		if kind != domain.EngagementLike {
			return nil
		}
		// A zero delta still goes through the row-locking UPDATE so the
		// returned count reflects a concurrent toggle by the same user.
		updated, err := s.posts.AdjustCounters(txCtx, postID, domain.EngagementCounts{Likes: delta})
		if err != nil {
			return fmt.Errorf("adjust counters: %w", err)
		}
		res.Count = updated.LikesCount
		return nil
	})
	if err != nil {
		return ToggleResult{}, err
	}

	s.metrics.EngagementRecorded(kind, res.Active)
	s.log.InfoContext(ctx, "engagement toggled",
		slog.String("kind", kind.String()),
		slog.String("user_id", userID.String()),
		slog.String("post_id", postID.String()),
		slog.Bool("active", res.Active),
	)

	return res, nil
}

// Share records a share event and increments shares_count.
func (s *Service) Share(ctx context.Context, postID uuid.UUID) (ShareResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ShareResult{}, domain.ErrUnauthorized
	}

	var res ShareResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.posts.GetByID(txCtx, postID); err != nil {
			return fmt.Errorf("get post: %w", err)
		}
		if err := s.edges.InsertShare(txCtx, userID, postID); err != nil {
			return fmt.Errorf("insert share: %w", err)
		}
		updated, err := s.posts.AdjustCounters(txCtx, postID, domain.EngagementCounts{Shares: 1})
		if err != nil {
			return fmt.Errorf("adjust counters: %w", err)
		}
		res.ShareCount = updated.SharesCount
		return nil
	})
	if err != nil {
		return ShareResult{}, err
	}

	s.metrics.EngagementRecorded(domain.EngagementShare, true)
	s.log.InfoContext(ctx, "post shared",
		slog.String("user_id", userID.String()),
		slog.String("post_id", postID.String()),
	)

	return res, nil
}
