package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

type postJSON struct {
	ID               uuid.UUID `json:"id"`
	AuthorID         uuid.UUID `json:"authorId"`
	Body             string    `json:"body"`
	ModerationStatus string    `json:"moderationStatus"`
	LikesCount       int       `json:"likesCount"`
	CommentsCount    int       `json:"commentsCount"`
	SharesCount      int       `json:"sharesCount"`
	EngagementScore  int       `json:"engagementScore"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toPostJSON(p *domain.Post) *postJSON {
	if p == nil {
		return nil
	}
	return &postJSON{
		ID:               p.ID,
		AuthorID:         p.AuthorID,
		Body:             p.Body,
		ModerationStatus: p.ModerationStatus.String(),
		LikesCount:       p.LikesCount,
		CommentsCount:    p.CommentsCount,
		SharesCount:      p.SharesCount,
		EngagementScore:  p.EngagementScore,
		CreatedAt:        p.CreatedAt,
	}
}

type queueItemJSON struct {
	ID                  uuid.UUID  `json:"id"`
	PostID              *uuid.UUID `json:"postId,omitempty"`
	UserID              uuid.UUID  `json:"userId"`
	ContentType         string     `json:"contentType"`
	Content             string     `json:"content"`
	RiskScore           int        `json:"riskScore"`
	Flags               []string   `json:"flags"`
	ReviewStatus        string     `json:"reviewStatus"`
	QueuedAt            time.Time  `json:"queuedAt"`
	ReviewedAt          *time.Time `json:"reviewedAt,omitempty"`
	ReviewerID          *uuid.UUID `json:"reviewerId,omitempty"`
	ReviewerReason      *string    `json:"reviewerReason,omitempty"`
	ReviewerSuggestions *string    `json:"reviewerSuggestions,omitempty"`
	Post                *postJSON  `json:"post,omitempty"`
}

func toQueueItemJSON(i *domain.ReviewQueueItem, post *domain.Post) queueItemJSON {
	flags := i.Flags
	if flags == nil {
		flags = []string{}
	}
	return queueItemJSON{
		ID:                  i.ID,
		PostID:              i.PostID,
		UserID:              i.UserID,
		ContentType:         i.ContentType.String(),
		Content:             i.Content,
		RiskScore:           i.RiskScore,
		Flags:               flags,
		ReviewStatus:        i.ReviewStatus.String(),
		QueuedAt:            i.QueuedAt,
		ReviewedAt:          i.ReviewedAt,
		ReviewerID:          i.ReviewerID,
		ReviewerReason:      i.ReviewerReason,
		ReviewerSuggestions: i.ReviewerSuggestions,
		Post:                toPostJSON(post),
	}
}

type logEntryJSON struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	PostID          *uuid.UUID `json:"postId,omitempty"`
	QueueItemID     *uuid.UUID `json:"queueItemId,omitempty"`
	ContentType     string     `json:"contentType"`
	Content         string     `json:"content"`
	Status          string     `json:"status"`
	RiskScore       int        `json:"riskScore"`
	Flags           []string   `json:"flags"`
	Reason          string     `json:"reason"`
	ModeratedAt     time.Time  `json:"moderatedAt"`
	HumanReviewerID *uuid.UUID `json:"humanReviewerId,omitempty"`
}

func toLogEntryJSON(e *domain.ModerationLogEntry) logEntryJSON {
	flags := e.Flags
	if flags == nil {
		flags = []string{}
	}
	return logEntryJSON{
		ID:              e.ID,
		UserID:          e.UserID,
		PostID:          e.PostID,
		QueueItemID:     e.QueueItemID,
		ContentType:     e.ContentType.String(),
		Content:         e.Content,
		Status:          e.Status.String(),
		RiskScore:       e.RiskScore,
		Flags:           flags,
		Reason:          e.Reason,
		ModeratedAt:     e.ModeratedAt,
		HumanReviewerID: e.HumanReviewerID,
	}
}

func toLogEntriesJSON(entries []domain.ModerationLogEntry) []logEntryJSON {
	out := make([]logEntryJSON, 0, len(entries))
	for i := range entries {
		out = append(out, toLogEntryJSON(&entries[i]))
	}
	return out
}

type commentJSON struct {
	ID        uuid.UUID  `json:"id"`
	PostID    uuid.UUID  `json:"postId"`
	UserID    uuid.UUID  `json:"userId"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toCommentJSON(c *domain.Comment) *commentJSON {
	if c == nil {
		return nil
	}
	return &commentJSON{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type flagCountJSON struct {
	Flag  string `json:"flag"`
	Count int    `json:"count"`
}

type statsJSON struct {
	TotalPending    int             `json:"totalPending"`
	TotalReviewed   int             `json:"totalReviewed"`
	HighRiskItems   int             `json:"highRiskItems"`
	AvgResponseTime int             `json:"avgResponseTime"`
	TopFlags        []flagCountJSON `json:"topFlags"`
}

func toStatsJSON(s domain.QueueStats) statsJSON {
	flags := make([]flagCountJSON, 0, len(s.TopFlags))
	for _, f := range s.TopFlags {
		flags = append(flags, flagCountJSON{Flag: f.Flag, Count: f.Count})
	}
	return statsJSON{
		TotalPending:    s.TotalPending,
		TotalReviewed:   s.TotalReviewed,
		HighRiskItems:   s.HighRiskItems,
		AvgResponseTime: s.AvgResponseMinutes,
		TopFlags:        flags,
	}
}

// Rates are whole percentages.
type accuracyJSON struct {
	Reviewed          int `json:"reviewed"`
	TruePositives     int `json:"truePositives"`
	FalsePositives    int `json:"falsePositives"`
	TrueNegatives     int `json:"trueNegatives"`
	FalseNegatives    int `json:"falseNegatives"`
	Accuracy          int `json:"accuracy"`
	Precision         int `json:"precision"`
	Recall            int `json:"recall"`
	F1Score           int `json:"f1Score"`
	FalsePositiveRate int `json:"falsePositiveRate"`
	FalseNegativeRate int `json:"falseNegativeRate"`
}

type performanceJSON struct {
	WindowStart           time.Time      `json:"windowStart"`
	WindowEnd             time.Time      `json:"windowEnd"`
	TotalRequests         int            `json:"totalRequests"`
	StatusDistribution    map[string]int `json:"statusDistribution"`
	HighRiskCount         int            `json:"highRiskCount"`
	HighRiskDetectionRate int            `json:"highRiskDetectionRate"`
	AccuracyMetrics       accuracyJSON   `json:"accuracyMetrics"`
}

func toPerformanceJSON(r domain.PerformanceReport) performanceJSON {
	dist := make(map[string]int, len(r.StatusDistribution))
	for status, n := range r.StatusDistribution {
		dist[status.String()] = n
	}
	a := r.Accuracy
	return performanceJSON{
		WindowStart:           r.WindowStart,
		WindowEnd:             r.WindowEnd,
		TotalRequests:         r.TotalRequests,
		StatusDistribution:    dist,
		HighRiskCount:         r.HighRiskCount,
		HighRiskDetectionRate: domain.Percent(r.HighRiskDetectionRate),
		AccuracyMetrics: accuracyJSON{
			Reviewed:          a.Reviewed,
			TruePositives:     a.TruePositives,
			FalsePositives:    a.FalsePositives,
			TrueNegatives:     a.TrueNegatives,
			FalseNegatives:    a.FalseNegatives,
			Accuracy:          domain.Percent(a.Accuracy),
			Precision:         domain.Percent(a.Precision),
			Recall:            domain.Percent(a.Recall),
			F1Score:           domain.Percent(a.F1),
			FalsePositiveRate: domain.Percent(a.FalsePositiveRate),
			FalseNegativeRate: domain.Percent(a.FalseNegativeRate),
		},
	}
}
