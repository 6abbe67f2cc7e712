package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
	"github.com/pathpiper/pathpiper-backend/pkg/ctxutil"
)

const recountBatchSize = 500

// GetPost returns a post. Signed-in viewers also get their like and
// bookmark flags.
func (s *Service) GetPost(ctx context.Context, postID uuid.UUID) (PostView, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return PostView{}, fmt.Errorf("get post: %w", err)
	}

	view := PostView{Post: *post}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return view, nil
	}

	if view.Liked, err = s.edges.HasEdge(ctx, domain.EngagementLike, userID, postID); err != nil {
		return PostView{}, fmt.Errorf("check like: %w", err)
	}
	if view.Bookmarked, err = s.edges.HasEdge(ctx, domain.EngagementBookmark, userID, postID); err != nil {
		return PostView{}, fmt.Errorf("check bookmark: %w", err)
	}
	return view, nil
}

// Recount recomputes a post's counters from its edge rows.
func (s *Service) Recount(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	var post *domain.Post
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		counts, err := s.edges.CountEdges(txCtx, postID)
		if err != nil {
			return fmt.Errorf("count edges: %w", err)
		}
		post, err = s.posts.SetCounters(txCtx, postID, counts)
		if err != nil {
			return fmt.Errorf("set counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post counters recomputed",
		slog.String("post_id", postID.String()),
		slog.Int("likes", post.LikesCount),
		slog.Int("comments", post.CommentsCount),
		slog.Int("shares", post.SharesCount),
	)
	return post, nil
}

// RecountAll recomputes counters for every post in ID order and returns
// the number of posts processed.
func (s *Service) RecountAll(ctx context.Context) (int, error) {
	var (
		after = uuid.Nil
		total int
	)
	for {
		ids, err := s.posts.ListIDs(ctx, after, recountBatchSize)
		if err != nil {
			return total, fmt.Errorf("list posts: %w", err)
		}
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			if _, err := s.Recount(ctx, id); err != nil {
				return total, fmt.Errorf("recount post %s: %w", id, err)
			}
			total++
		}
		if len(ids) < recountBatchSize {
			return total, nil
		}
		after = ids[len(ids)-1]
	}
}
