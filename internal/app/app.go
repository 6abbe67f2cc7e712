package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathpiper/pathpiper-backend/internal/adapter/cache"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/comment"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/engagement"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/modlog"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/post"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/profile"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/reviewqueue"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/provider/supabase"
	"github.com/pathpiper/pathpiper-backend/internal/auth"
	"github.com/pathpiper/pathpiper-backend/internal/config"
	"github.com/pathpiper/pathpiper-backend/internal/metrics"
	engagementsvc "github.com/pathpiper/pathpiper-backend/internal/service/engagement"
	"github.com/pathpiper/pathpiper-backend/internal/service/moderation"
	"github.com/pathpiper/pathpiper-backend/internal/service/session"
	"github.com/pathpiper/pathpiper-backend/internal/transport/dataloader"
	"github.com/pathpiper/pathpiper-backend/internal/transport/middleware"
	"github.com/pathpiper/pathpiper-backend/internal/transport/rest"
)

const snapshotTimeout = time.Minute

// Run loads configuration, wires the application and serves HTTP until ctx
// is cancelled, then drains and shuts down.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("auth_mode", cfg.Auth.Mode),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, postgres.MigrateUp, logger); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	app := wire(cfg, pool, logger)
	defer app.limiter.Stop()

	sched, err := newScheduler(logger, job{
		name:     "performance-snapshot",
		schedule: cfg.Moderation.SnapshotSchedule,
		timeout:  snapshotTimeout,
		run:      app.moderations.Snapshot,
	})
	if err != nil {
		return err
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           app.handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	app.health.Drain()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// application is the wired HTTP stack and the services the scheduler needs.
type application struct {
	handler     http.Handler
	health      *rest.HealthHandler
	moderations *moderation.Service
	limiter     *middleware.RateLimiter
}

// wire builds repositories, services and the router on top of pool.
// The caller owns pool and must stop the rate limiter.
func wire(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *application {
	var (
		posts       = post.New(pool)
		edges       = engagement.New(pool)
		comments    = comment.New(pool)
		queue       = reviewqueue.New(pool)
		logs        = modlog.New(pool)
		profiles    = profile.New(pool)
		txm         = postgres.NewTxManager(pool)
		collectors  = metrics.New()
		sessions    = newSessionService(cfg.Auth, profiles, logger)
		engagements = engagementsvc.NewService(logger, posts, edges, comments, txm, collectors)
		moderations = moderation.NewService(logger, queue, logs, posts, txm, collectors, cfg.Moderation)
		limiter     = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		health      = rest.NewHealthHandler(pool, Version)
	)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		Health:         health,
		Moderation:     rest.NewModerationHandler(moderations, logger),
		Posts:          rest.NewPostHandler(engagements, logger),
		Auth:           rest.NewAuthHandler(sessions),
		Resolver:       sessions,
		Metrics:        collectors,
		Loaders:        dataloader.Middleware(posts),
		RateLimiter:    limiter,
		CORS:           cfg.CORS,
		RateLimit:      cfg.RateLimit.RequestsPerMinute,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	return &application{
		handler:     handler,
		health:      health,
		moderations: moderations,
		limiter:     limiter,
	}
}

// newSessionService picks the token verifier for the configured auth mode.
// Only the remote mode can revoke sessions at Supabase on logout.
func newSessionService(cfg config.AuthConfig, profiles *profile.Repo, logger *slog.Logger) *session.Service {
	principals := cache.NewPrincipalCache(cfg.CacheSize, cfg.CacheTTL)

	if cfg.Mode == config.AuthModeRemote {
		v := supabase.NewVerifier(supabase.Options{
			BaseURL:         cfg.SupabaseURL,
			AnonKey:         cfg.SupabaseAnonKey,
			Timeout:         cfg.VerifyTimeout,
			BreakerFailures: cfg.BreakerFailures,
			BreakerCooldown: cfg.BreakerCooldown,
		}, logger)
		return session.NewService(logger, v, v, profiles, principals, cfg.VerifyTimeout)
	}

	return session.NewService(logger, auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTAudience), nil, profiles, principals, cfg.VerifyTimeout)
}
