package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// GetStats summarises the review queue. The aggregates are read concurrently.
func (s *Service) GetStats(ctx context.Context) (domain.QueueStats, error) {
	var stats domain.QueueStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalPending, stats.TotalReviewed, err = s.queue.CountByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.HighRiskItems, err = s.queue.CountHighRiskPending(gctx, domain.HighRiskThreshold)
		return err
	})
	g.Go(func() error {
		var err error
		stats.AvgResponseMinutes, err = s.queue.AvgResponseMinutes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TopFlags, err = s.queue.TopFlags(gctx, s.cfg.TopFlags)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.QueueStats{}, fmt.Errorf("queue stats: %w", err)
	}

	if stats.TopFlags == nil {
		stats.TopFlags = []domain.FlagCount{}
	}
	return stats, nil
}

// ComputeMetrics builds the performance report for the requested window.
func (s *Service) ComputeMetrics(ctx context.Context, input PerformanceInput) (PerformanceResult, error) {
	start, end, err := input.window(s.now(), s.cfg.DefaultWindow)
	if err != nil {
		return PerformanceResult{}, err
	}

	report, err := s.report(ctx, start, end)
	if err != nil {
		return PerformanceResult{}, err
	}
	return PerformanceResult{Report: report, Recommendations: report.Recommendations()}, nil
}

// Snapshot computes the report over the trailing window and publishes it
// to the metrics recorder.
func (s *Service) Snapshot(ctx context.Context) error {
	end := s.now().UTC()
	report, err := s.report(ctx, end.Add(-s.cfg.SnapshotWindow), end)
	if err != nil {
		return err
	}

	s.metrics.PerformanceObserved(report)
	s.log.DebugContext(ctx, "performance snapshot",
		slog.Int("total_requests", report.TotalRequests),
		slog.Int("reviewed", report.Accuracy.Reviewed),
	)
	return nil
}

func (s *Service) report(ctx context.Context, start, end time.Time) (domain.PerformanceReport, error) {
	var (
		dist     map[domain.ModerationStatus]int
		highRisk int
		outcomes []domain.ReviewOutcome
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dist, err = s.logs.StatusDistribution(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		highRisk, err = s.logs.CountHighRisk(gctx, start, end, domain.HighRiskThreshold)
		return err
	})
	g.Go(func() error {
		var err error
		outcomes, err = s.queue.ReviewOutcomes(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.PerformanceReport{}, fmt.Errorf("performance report: %w", err)
	}

	total := 0
	for _, n := range dist {
		total += n
	}
	if dist == nil {
		dist = map[domain.ModerationStatus]int{}
	}

	return domain.PerformanceReport{
		WindowStart:           start,
		WindowEnd:             end,
		TotalRequests:         total,
		StatusDistribution:    dist,
		HighRiskCount:         highRisk,
		HighRiskDetectionRate: domain.Ratio(highRisk, total),
		Accuracy:              domain.ComputeAccuracy(outcomes),
	}, nil
}
