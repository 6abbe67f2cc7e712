// Package metrics exposes Prometheus collectors for the HTTP layer,
// engagement activity and moderation performance.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const namespace = "pathpiper"

// Metrics owns a private registry and every collector registered on it.
type Metrics struct {
	registry *prometheus.Registry

	httpDuration      *prometheus.HistogramVec
	engagementEvents  *prometheus.CounterVec
	reviewDecisions   *prometheus.CounterVec
	automatedVerdicts *prometheus.CounterVec
	performance       *prometheus.GaugeVec
	windowRequests    prometheus.Gauge
	windowReviewed    prometheus.Gauge
}

// New creates the collectors and registers them with a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Time spent serving HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		engagementEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engagement_events_total",
				Help:      "Engagement edges added or removed, by kind",
			},
			[]string{"kind", "op"},
		),
		reviewDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moderation_decisions_total",
				Help:      "Human review decisions, by action",
			},
			[]string{"action"},
		),
		automatedVerdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moderation_automated_verdicts_total",
				Help:      "Automated classifier verdicts, by status and whether they were queued",
			},
			[]string{"status", "queued"},
		),
		performance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "moderation_performance_ratio",
				Help:      "Moderation quality ratios over the snapshot window",
			},
			[]string{"metric"},
		),
		windowRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "moderation_window_requests",
			Help:      "Moderation log entries in the snapshot window",
		}),
		windowReviewed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "moderation_window_reviewed",
			Help:      "Human decisions in the snapshot window",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpDuration,
		m.engagementEvents,
		m.reviewDecisions,
		m.automatedVerdicts,
		m.performance,
		m.windowRequests,
		m.windowReviewed,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// EngagementRecorded counts an engagement edge change.
func (m *Metrics) EngagementRecorded(kind domain.EngagementKind, added bool) {
	op := "remove"
	if added {
		op = "add"
	}
	m.engagementEvents.WithLabelValues(kind.String(), op).Inc()
}

// DecisionRecorded counts a human review decision.
func (m *Metrics) DecisionRecorded(action domain.ReviewAction) {
	m.reviewDecisions.WithLabelValues(action.String()).Inc()
}

// AutomatedRecorded counts an automated verdict.
func (m *Metrics) AutomatedRecorded(status domain.ModerationStatus, queued bool) {
	m.automatedVerdicts.WithLabelValues(status.String(), strconv.FormatBool(queued)).Inc()
}

// PerformanceObserved publishes a performance report as gauges.
func (m *Metrics) PerformanceObserved(r domain.PerformanceReport) {
	m.windowRequests.Set(float64(r.TotalRequests))
	m.windowReviewed.Set(float64(r.Accuracy.Reviewed))

	a := r.Accuracy
	for name, v := range map[string]float64{
		"accuracy":                 a.Accuracy,
		"precision":                a.Precision,
		"recall":                   a.Recall,
		"f1":                       a.F1,
		"false_positive_rate":      a.FalsePositiveRate,
		"false_negative_rate":      a.FalseNegativeRate,
		"high_risk_detection_rate": r.HighRiskDetectionRate,
	} {
		m.performance.WithLabelValues(name).Set(v)
	}
}
