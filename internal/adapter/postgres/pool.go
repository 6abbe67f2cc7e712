package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pathpiper/pathpiper-backend/internal/config"
)

// ApplicationName tags every backend connection in pg_stat_activity.
const ApplicationName = "pathpiper-backend"

// NewPool opens the connection pool and waits for the database to answer.
// Pings back off exponentially until cfg.ConnectTimeout so the API can boot
// next to a database that is still starting.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	if err := waitReady(ctx, pool, cfg.ConnectTimeout, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable after %s: %w", cfg.ConnectTimeout, err)
	}

	stat := pool.Stat()
	log.InfoContext(ctx, "database pool ready",
		slog.Int("max_conns", int(stat.MaxConns())),
		slog.Int("open_conns", int(stat.TotalConns())),
	)
	return pool, nil
}

func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_DSN: %w", err)
	}
	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	if _, ok := pc.ConnConfig.RuntimeParams["application_name"]; !ok {
		pc.ConnConfig.RuntimeParams["application_name"] = ApplicationName
	}
	return pc, nil
}

func waitReady(ctx context.Context, pool *pgxpool.Pool, limit time.Duration, log *slog.Logger) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 250 * time.Millisecond
	bo.MaxInterval = 4 * time.Second
	bo.MaxElapsedTime = limit

	attempt := 0
	return backoff.RetryNotify(
		func() error {
			attempt++
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return pool.Ping(pingCtx)
		},
		backoff.WithContext(bo, ctx),
		func(err error, next time.Duration) {
			log.WarnContext(ctx, "waiting for database",
				slog.Int("attempt", attempt),
				slog.Duration("next", next),
				slog.String("error", err.Error()),
			)
		},
	)
}
