package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, slog.String("error", err.Error()))...)
}

// job is a named periodic task.
type job struct {
	name     string
	schedule string
	timeout  time.Duration
	run      func(ctx context.Context) error
}

// newScheduler registers jobs on a cron whose runs are panic-safe and
// never overlap. Each run gets its own timeout.
func newScheduler(logger *slog.Logger, jobs ...job) (*cron.Cron, error) {
	log := logger.With("component", "scheduler")
	cl := cronLogger{log: log}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))

	for _, j := range jobs {
		_, err := c.AddFunc(j.schedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
			defer cancel()

			start := time.Now()
			if err := j.run(ctx); err != nil {
				log.Error("job failed", slog.String("job", j.name), slog.String("error", err.Error()))
				return
			}
			log.Debug("job done", slog.String("job", j.name), slog.Duration("duration", time.Since(start)))
		})
		if err != nil {
			return nil, fmt.Errorf("schedule %s %q: %w", j.name, j.schedule, err)
		}
	}
	return c, nil
}
