package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reason prefixes tag the origin of a moderation log entry.
const (
	ReasonPrefixAutomated   = "automated:"
	ReasonPrefixHumanReview = "human_review:"
	ReasonPrefixOverride    = "override:"
)

// MaxLogSnapshotLength bounds the content snapshot kept in the log, in runes.
const MaxLogSnapshotLength = 500

// ReviewQueueItem is flagged content awaiting a human decision.
// It transitions out of pending exactly once and is never deleted.
type ReviewQueueItem struct {
	ID                  uuid.UUID
	PostID              *uuid.UUID
	UserID              uuid.UUID
	ContentType         ContentType
	Content             string
	RiskScore           int
	Flags               []string
	ReviewStatus        ReviewStatus
	QueuedAt            time.Time
	ReviewedAt          *time.Time
	ReviewerID          *uuid.UUID
	ReviewerReason      *string
	ReviewerSuggestions *string
}

// IsHighRisk reports whether the item's risk score reaches HighRiskThreshold.
func (i *ReviewQueueItem) IsHighRisk() bool {
	return i.RiskScore >= HighRiskThreshold
}

// ModerationLogEntry is an immutable audit record of one moderation decision.
type ModerationLogEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	PostID          *uuid.UUID
	QueueItemID     *uuid.UUID
	ContentType     ContentType
	Content         string
	Status          ModerationStatus
	RiskScore       int
	Flags           []string
	Reason          string
	ModeratedAt     time.Time
	HumanReviewerID *uuid.UUID
}

// IsHumanReviewed reports whether the entry records a moderator decision.
func (e *ModerationLogEntry) IsHumanReviewed() bool {
	return e.HumanReviewerID != nil
}

// PrefixReason prepends prefix to reason unless it is already present.
func PrefixReason(prefix, reason string) string {
	reason = strings.TrimSpace(reason)
	if strings.HasPrefix(reason, prefix) {
		return reason
	}
	if reason == "" {
		return prefix
	}
	return prefix + " " + reason
}

// TruncateSnapshot shortens content to at most max runes.
func TruncateSnapshot(content string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max])
}

// QueueFilter narrows a review queue listing. Zero values mean no filter.
type QueueFilter struct {
	Status      *ReviewStatus
	ContentType *ContentType
	MinRisk     *int
	Limit       int
	Offset      int
}

// FlagCount is the number of queue items carrying a flag.
type FlagCount struct {
	Flag  string
	Count int
}

// QueueStats summarises the review queue for the moderator dashboard.
type QueueStats struct {
	TotalPending       int
	TotalReviewed      int
	HighRiskItems      int
	AvgResponseMinutes int
	TopFlags           []FlagCount
}
