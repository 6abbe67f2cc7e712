package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pathpiper/pathpiper-backend/internal/config"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
	"github.com/pathpiper/pathpiper-backend/internal/transport/middleware"
)

type httpMetrics interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
	Handler() http.Handler
}

type principalResolver interface {
	Resolve(ctx context.Context, token string) (domain.Principal, error)
}

// RouterDeps bundles what NewRouter wires together.
type RouterDeps struct {
	Logger         *slog.Logger
	Health         *HealthHandler
	Moderation     *ModerationHandler
	Posts          *PostHandler
	Auth           *AuthHandler
	Resolver       principalResolver
	Metrics        httpMetrics
	Loaders        func(http.Handler) http.Handler
	RateLimiter    *middleware.RateLimiter
	CORS           config.CORSConfig
	RateLimit      int
	RequestTimeout time.Duration
}

// NewRouter builds the HTTP surface. Probes and /metrics bypass auth and
// rate limiting; everything else runs the full middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	root := mux.NewRouter()
	root.Use(middleware.Metrics(d.Metrics))

	root.HandleFunc("/live", d.Health.Live).Methods(http.MethodGet)
	root.HandleFunc("/ready", d.Health.Ready).Methods(http.MethodGet)
	root.HandleFunc("/health", d.Health.Health).Methods(http.MethodGet)
	root.Handle("/metrics", d.Metrics.Handler()).Methods(http.MethodGet)

	api := root.PathPrefix("/").Subrouter()
	api.Use(
		mux.MiddlewareFunc(d.RateLimiter.Limit(d.RateLimit)),
		mux.MiddlewareFunc(middleware.Timeout(d.RequestTimeout)),
		mux.MiddlewareFunc(middleware.Auth(d.Resolver, d.Logger)),
		mux.MiddlewareFunc(d.Loaders),
	)

	authed := mux.MiddlewareFunc(middleware.RequireAuth)
	moderator := mux.MiddlewareFunc(middleware.RequireRole(domain.RoleModerator, domain.RoleAdmin))
	admin := mux.MiddlewareFunc(middleware.RequireRole(domain.RoleAdmin))
	ingest := mux.MiddlewareFunc(middleware.RequireRole(domain.RoleService, domain.RoleAdmin))

	api.Handle("/moderation/automated", ingest(http.HandlerFunc(d.Moderation.Automated))).Methods(http.MethodPost)
	api.Handle("/moderation/posts/{id}/status", admin(http.HandlerFunc(d.Moderation.Override))).Methods(http.MethodPatch)

	mod := api.PathPrefix("/moderation").Subrouter()
	mod.Use(moderator)
	mod.HandleFunc("/review/{id}", d.Moderation.Review).Methods(http.MethodPatch)
	mod.HandleFunc("/stats", d.Moderation.Stats).Methods(http.MethodGet)
	mod.HandleFunc("/performance", d.Moderation.Performance).Methods(http.MethodGet)
	mod.HandleFunc("/queue", d.Moderation.Queue).Methods(http.MethodGet)
	mod.HandleFunc("/queue/{id}", d.Moderation.Item).Methods(http.MethodGet)
	mod.HandleFunc("/logs", d.Moderation.Logs).Methods(http.MethodGet)

	api.HandleFunc("/posts/{id}", d.Posts.Get).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/comment", d.Posts.ListComments).Methods(http.MethodGet)
	api.Handle("/posts/{id}/like", authed(http.HandlerFunc(d.Posts.Like))).Methods(http.MethodPost)
	api.Handle("/posts/{id}/bookmark", authed(http.HandlerFunc(d.Posts.Bookmark))).Methods(http.MethodPost)
	api.Handle("/posts/{id}/share", authed(http.HandlerFunc(d.Posts.Share))).Methods(http.MethodPost)
	api.Handle("/posts/{id}/comment", authed(http.HandlerFunc(d.Posts.CreateComment))).Methods(http.MethodPost)
	api.Handle("/posts/{id}/comment/{commentId}", authed(http.HandlerFunc(d.Posts.DeleteComment))).Methods(http.MethodDelete)
	api.Handle("/posts/{id}/recount", admin(http.HandlerFunc(d.Posts.Recount))).Methods(http.MethodPost)

	api.Handle("/auth/logout", authed(http.HandlerFunc(d.Auth.Logout))).Methods(http.MethodPost)

	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)(root)
}
