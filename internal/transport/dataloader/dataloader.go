// Package dataloader batches per-request post lookups. Handlers that render
// many queue items resolve their posts through one loader, so a page of
// items costs a single query.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type postRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Post, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	PostByID *dataloader.Loader[uuid.UUID, *domain.Post]
}

// NewLoaders must be called per request; loaders cache within their lifetime.
func NewLoaders(posts postRepo) *Loaders {
	return &Loaders{
		PostByID: dataloader.NewBatchedLoader(
			newPostBatchFn(posts),
			dataloader.WithWait[uuid.UUID, *domain.Post](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.Post](maxBatch),
		),
	}
}

// newPostBatchFn resolves keys in order. Unknown ids yield a nil post.
func newPostBatchFn(repo postRepo) dataloader.BatchFunc[uuid.UUID, *domain.Post] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Post] {
		results := make([]*dataloader.Result[*domain.Post], len(keys))

		posts, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.Post]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.Post, len(posts))
		for i := range posts {
			byID[posts[i].ID] = &posts[i]
		}
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Post]{Data: byID[key]}
		}
		return results
	}
}

// LoadPosts resolves ids through the loader in ctx. Missing posts are
// absent from the returned map.
func LoadPosts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Post, error) {
	l := FromContext(ctx)
	if l == nil || len(ids) == 0 {
		return map[uuid.UUID]*domain.Post{}, nil
	}

	posts, errs := l.PostByID.LoadMany(ctx, ids)()
	out := make(map[uuid.UUID]*domain.Post, len(ids))
	for i, p := range posts {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		if p != nil {
			out[ids[i]] = p
		}
	}
	return out, nil
}

type contextKey struct{}

// WithLoaders stores l in ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request's loaders, or nil outside Middleware.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(contextKey{}).(*Loaders)
	return l
}

// Middleware attaches fresh loaders to every request.
func Middleware(posts postRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), NewLoaders(posts))))
		})
	}
}
