// Command recount rebuilds every post's engagement counters from the edge
// tables. It repairs drift left by manual data fixes and is meant to be run
// by an external cron job or by hand.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/comment"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/engagement"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/post"
	"github.com/pathpiper/pathpiper-backend/internal/app"
	"github.com/pathpiper/pathpiper-backend/internal/config"
	"github.com/pathpiper/pathpiper-backend/internal/metrics"
	engagementsvc "github.com/pathpiper/pathpiper-backend/internal/service/engagement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := engagementsvc.NewService(
		logger,
		post.New(pool),
		engagement.New(pool),
		comment.New(pool),
		postgres.NewTxManager(pool),
		metrics.New(),
	)

	start := time.Now()
	n, err := svc.RecountAll(ctx)
	if err != nil {
		logger.Error("recount failed",
			slog.String("error", err.Error()),
			slog.Int("posts_done", n),
		)
		os.Exit(1)
	}

	logger.Info("recount complete",
		slog.Int("posts", n),
		slog.Duration("duration", time.Since(start)),
	)
}
