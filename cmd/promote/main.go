// Command promote grants moderation staff roles. It is how the first
// moderator or admin gets created on a fresh deployment.
//
//	promote -user <profile uuid> [-role moderator|admin]
//
// Configuration is read the same way as the server (config.yaml, .env, env).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres"
	"github.com/pathpiper/pathpiper-backend/internal/adapter/postgres/profile"
	"github.com/pathpiper/pathpiper-backend/internal/app"
	"github.com/pathpiper/pathpiper-backend/internal/config"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

var errUsage = errors.New("usage: promote -user <profile uuid> [-role moderator|admin]")

func main() {
	userFlag := flag.String("user", "", "profile to promote")
	roleFlag := flag.String("role", string(domain.RoleModerator), "moderator or admin")
	flag.Parse()

	userID, role, err := parseArgs(*userFlag, *roleFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := promote(ctx, cfg.Database, logger, userID, role); err != nil {
		logger.Error("promote failed", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseArgs(user, role string) (uuid.UUID, domain.Role, error) {
	id, err := uuid.Parse(user)
	if err != nil {
		return uuid.Nil, "", errUsage
	}
	r := domain.Role(role)
	if !r.CanModerate() {
		return uuid.Nil, "", fmt.Errorf("role %q cannot moderate: %w", role, errUsage)
	}
	return id, r, nil
}

func promote(ctx context.Context, db config.DatabaseConfig, logger *slog.Logger, id uuid.UUID, role domain.Role) error {
	pool, err := postgres.NewPool(ctx, db, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	changed, err := profile.New(pool).SetRole(ctx, id, role)
	if err != nil {
		return err
	}
	logger.Info("profile role set",
		slog.String("user_id", id.String()),
		slog.String("role", string(role)),
		slog.Bool("changed", changed),
	)
	return nil
}
