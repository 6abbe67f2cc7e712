package moderation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const (
	maxReasonLength      = 1000
	maxSuggestionsLength = 2000
	maxFlags             = 50
)

// SubmitDecisionInput holds a moderator's decision on a queue item.
type SubmitDecisionInput struct {
	ItemID      uuid.UUID
	Action      domain.ReviewAction
	Reason      *string
	Suggestions *string
}

// Validate checks all fields and collects all errors.
func (i SubmitDecisionInput) Validate() error {
	var errs domain.FieldErrors

	if i.ItemID == uuid.Nil {
		errs.Add("id", "required")
	}
	if !i.Action.IsValid() {
		errs.Add("action", "must be approve or reject")
	}
	if i.Reason != nil && utf8.RuneCountInString(*i.Reason) > maxReasonLength {
		errs.Add("reason", "max 1000 characters")
	}
	if i.Suggestions != nil && utf8.RuneCountInString(*i.Suggestions) > maxSuggestionsLength {
		errs.Add("suggestions", "max 2000 characters")
	}

	return errs.Err()
}

// AutomatedDecisionInput is one verdict from the automated classifier.
type AutomatedDecisionInput struct {
	PostID      *uuid.UUID
	UserID      uuid.UUID
	ContentType domain.ContentType
	Content     string
	Status      domain.ModerationStatus
	RiskScore   int
	Flags       []string
	Reason      string
	NeedsReview bool
}

// Validate checks all fields and collects all errors.
func (i AutomatedDecisionInput) Validate() error {
	var errs domain.FieldErrors

	if i.UserID == uuid.Nil {
		errs.Add("userId", "required")
	}
	if !i.ContentType.IsValid() {
		errs.Add("contentType", "invalid value")
	}
	if i.PostID != nil && i.ContentType != domain.ContentTypePost {
		errs.Add("postId", "only applies to post content")
	}
	if !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}
	if i.RiskScore < 0 {
		errs.Add("riskScore", "must be non-negative")
	}
	if len(i.Flags) > maxFlags {
		errs.Add("flags", "max 50 flags")
	}
	for _, f := range i.Flags {
		if strings.TrimSpace(f) == "" {
			errs.Add("flags", "must not contain empty values")
			break
		}
	}
	if utf8.RuneCountInString(i.Reason) > maxReasonLength {
		errs.Add("reason", "max 1000 characters")
	}

	return errs.Err()
}

// OverrideStatusInput sets a post's moderation status directly.
type OverrideStatusInput struct {
	PostID uuid.UUID
	Status domain.ModerationStatus
	Reason string
}

// Validate checks all fields and collects all errors.
func (i OverrideStatusInput) Validate() error {
	var errs domain.FieldErrors

	if i.PostID == uuid.Nil {
		errs.Add("id", "required")
	}
	if !i.Status.IsValid() {
		errs.Add("status", "invalid value")
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs.Add("reason", "required")
	}
	if utf8.RuneCountInString(i.Reason) > maxReasonLength {
		errs.Add("reason", "max 1000 characters")
	}

	return errs.Err()
}

// ListQueueInput filters the review queue. Zero values mean no filter.
type ListQueueInput struct {
	Status      *domain.ReviewStatus
	ContentType *domain.ContentType
	MinRisk     *int
	Limit       int
	Offset      int
}

// ListLogsInput selects log entries recorded at or after Since.
type ListLogsInput struct {
	Since     time.Time
	HumanOnly bool
	Limit     int
}

// PerformanceInput selects the metrics window. From/To take precedence
// over Timeframe; with neither, the configured default window is used.
type PerformanceInput struct {
	Timeframe string
	From      *time.Time
	To        *time.Time
}

// timeframes are the named windows accepted by PerformanceInput.
var timeframes = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// window resolves the input to a half-open [start, end) range.
func (i PerformanceInput) window(now time.Time, fallback time.Duration) (time.Time, time.Time, error) {
	if i.From != nil || i.To != nil {
		if i.From == nil || i.To == nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("from", "from and to must be given together")
		}
		if !i.From.Before(*i.To) {
			return time.Time{}, time.Time{}, domain.NewValidationError("from", "must be before to")
		}
		return i.From.UTC(), i.To.UTC(), nil
	}

	d := fallback
	if i.Timeframe != "" {
		var ok bool
		if d, ok = timeframes[i.Timeframe]; !ok {
			return time.Time{}, time.Time{}, domain.NewValidationError("timeframe", "must be one of 24h, 7d, 30d")
		}
	}
	end := now.UTC()
	return end.Add(-d), end, nil
}
