package domain

import (
	"math"
	"time"
)

// HighRiskThreshold is the risk score at or above which content counts as high risk.
const HighRiskThreshold = 15

// Recommendation thresholds, as ratios.
const (
	recommendFalsePositiveRate = 0.20
	recommendFalseNegativeRate = 0.10
	recommendMinPrecision      = 0.70
	recommendHighRiskRate      = 0.50
	recommendMinReviewed       = 10
)

// ReviewOutcome pairs a human decision with the automated verdict it reviewed.
// AutomatedStatus is nil when no automated log entry was recorded for the item.
type ReviewOutcome struct {
	AutomatedStatus *ModerationStatus
	RiskScore       int
	HumanStatus     ReviewStatus
}

// AutomatedPositive reports whether the classifier treated the item as a violation.
// Without a recorded verdict the risk score decides.
func (o ReviewOutcome) AutomatedPositive() bool {
	if o.AutomatedStatus != nil {
		return o.AutomatedStatus.IsViolation()
	}
	return o.RiskScore >= HighRiskThreshold
}

// HumanViolation reports whether the moderator confirmed a violation.
func (o ReviewOutcome) HumanViolation() bool {
	return o.HumanStatus == ReviewStatusRejected
}

// ConfusionMatrix counts automated verdicts against human ground truth.
type ConfusionMatrix struct {
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
}

// Total returns the number of classified outcomes.
func (m ConfusionMatrix) Total() int {
	return m.TruePositives + m.FalsePositives + m.TrueNegatives + m.FalseNegatives
}

// Tally builds a confusion matrix from terminal review outcomes.
// Pending outcomes are ignored.
func Tally(outcomes []ReviewOutcome) ConfusionMatrix {
	var m ConfusionMatrix
	for _, o := range outcomes {
		if !o.HumanStatus.IsTerminal() {
			continue
		}
		switch pos, viol := o.AutomatedPositive(), o.HumanViolation(); {
		case pos && viol:
			m.TruePositives++
		case pos && !viol:
			m.FalsePositives++
		case !pos && viol:
			m.FalseNegatives++
		default:
			m.TrueNegatives++
		}
	}
	return m
}

// AccuracyMetrics holds classifier quality ratios in [0, 1].
type AccuracyMetrics struct {
	ConfusionMatrix
	Reviewed          int
	Accuracy          float64
	Precision         float64
	Recall            float64
	F1                float64
	FalsePositiveRate float64
	FalseNegativeRate float64
}

// ComputeAccuracy derives accuracy metrics from review outcomes.
// Every ratio with an empty denominator is 0.
func ComputeAccuracy(outcomes []ReviewOutcome) AccuracyMetrics {
	m := Tally(outcomes)

	a := AccuracyMetrics{
		ConfusionMatrix:   m,
		Reviewed:          m.Total(),
		Accuracy:          Ratio(m.TruePositives+m.TrueNegatives, m.Total()),
		Precision:         Ratio(m.TruePositives, m.TruePositives+m.FalsePositives),
		Recall:            Ratio(m.TruePositives, m.TruePositives+m.FalseNegatives),
		FalsePositiveRate: Ratio(m.FalsePositives, m.FalsePositives+m.TrueNegatives),
		FalseNegativeRate: Ratio(m.FalseNegatives, m.FalseNegatives+m.TruePositives),
	}
	if a.Precision+a.Recall > 0 {
		a.F1 = 2 * a.Precision * a.Recall / (a.Precision + a.Recall)
	}
	return a
}

// Ratio returns num/den, or 0 when den is not positive.
func Ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Percent renders a ratio as a whole percentage.
func Percent(ratio float64) int {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}
	return int(math.Round(ratio * 100))
}

// PerformanceReport aggregates moderation activity over [WindowStart, WindowEnd).
type PerformanceReport struct {
	WindowStart           time.Time
	WindowEnd             time.Time
	TotalRequests         int
	StatusDistribution    map[ModerationStatus]int
	HighRiskCount         int
	HighRiskDetectionRate float64
	Accuracy              AccuracyMetrics
}

// Recommendations returns operator guidance derived from the report.
func (r PerformanceReport) Recommendations() []string {
	var out []string

	if r.Accuracy.Reviewed < recommendMinReviewed {
		out = append(out, "Not enough human-reviewed items in this window to assess classifier accuracy reliably.")
	}
	if r.Accuracy.Reviewed > 0 {
		if r.Accuracy.FalsePositiveRate >= recommendFalsePositiveRate {
			out = append(out, "False-positive rate is high: consider raising the risk threshold or narrowing flag rules.")
		}
		if r.Accuracy.FalseNegativeRate >= recommendFalseNegativeRate {
			out = append(out, "Automated moderation is missing violations: consider lowering the risk threshold.")
		}
		if r.Accuracy.TruePositives+r.Accuracy.FalsePositives > 0 && r.Accuracy.Precision < recommendMinPrecision {
			out = append(out, "Precision is below target: review the flags that most often lead to approvals.")
		}
	}
	if r.TotalRequests > 0 && r.HighRiskDetectionRate >= recommendHighRiskRate {
		out = append(out, "More than half of moderated content is high risk: check classifier calibration.")
	}
	if r.StatusDistribution[ModerationStatusPendingReview] > r.TotalRequests/2 && r.TotalRequests > 0 {
		out = append(out, "Most decisions are deferred to human review: add moderators or automate clear-cut cases.")
	}

	if len(out) == 0 {
		out = append(out, "Moderation performance is within expected ranges.")
	}
	return out
}
