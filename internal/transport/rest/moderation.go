package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
	"github.com/pathpiper/pathpiper-backend/internal/service/moderation"
	"github.com/pathpiper/pathpiper-backend/internal/transport/dataloader"
)

type moderationService interface {
	SubmitDecision(ctx context.Context, input moderation.SubmitDecisionInput) (*domain.ReviewQueueItem, error)
	IngestAutomated(ctx context.Context, input moderation.AutomatedDecisionInput) (moderation.AutomatedResult, error)
	OverrideStatus(ctx context.Context, input moderation.OverrideStatusInput) (*domain.Post, error)
	ListQueue(ctx context.Context, input moderation.ListQueueInput) (moderation.QueuePage, error)
	GetItem(ctx context.Context, id uuid.UUID) (moderation.ItemDetail, error)
	ListLogs(ctx context.Context, input moderation.ListLogsInput) ([]domain.ModerationLogEntry, error)
	GetStats(ctx context.Context) (domain.QueueStats, error)
	ComputeMetrics(ctx context.Context, input moderation.PerformanceInput) (moderation.PerformanceResult, error)
}

// ModerationHandler serves the moderator dashboard endpoints.
type ModerationHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

type reviewRequest struct {
	Action      string  `json:"action"`
	Reason      *string `json:"reason"`
	Suggestions *string `json:"suggestions"`
}

// Review handles PATCH /moderation/review/{id}.
func (h *ModerationHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.SubmitDecision(r.Context(), moderation.SubmitDecisionInput{
		ItemID:      id,
		Action:      domain.ReviewAction(req.Action),
		Reason:      req.Reason,
		Suggestions: req.Suggestions,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"item":    toQueueItemJSON(item, nil),
	})
}

type automatedRequest struct {
	PostID      *uuid.UUID `json:"postId"`
	UserID      uuid.UUID  `json:"userId"`
	ContentType string     `json:"contentType"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	RiskScore   int        `json:"riskScore"`
	Flags       []string   `json:"flags"`
	Reason      string     `json:"reason"`
	NeedsReview bool       `json:"needsReview"`
}

// Automated handles POST /moderation/automated.
func (h *ModerationHandler) Automated(w http.ResponseWriter, r *http.Request) {
	var req automatedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.IngestAutomated(r.Context(), moderation.AutomatedDecisionInput{
		PostID:      req.PostID,
		UserID:      req.UserID,
		ContentType: domain.ContentType(req.ContentType),
		Content:     req.Content,
		Status:      domain.ModerationStatus(req.Status),
		RiskScore:   req.RiskScore,
		Flags:       req.Flags,
		Reason:      req.Reason,
		NeedsReview: req.NeedsReview,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	body := map[string]any{
		"success":  true,
		"logEntry": toLogEntryJSON(res.Entry),
	}
	if res.QueueItem != nil {
		body["queueItem"] = toQueueItemJSON(res.QueueItem, nil)
	}
	writeJSON(w, http.StatusCreated, body)
}

type overrideRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// Override handles PATCH /moderation/posts/{id}/status.
func (h *ModerationHandler) Override(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req overrideRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	post, err := h.svc.OverrideStatus(r.Context(), moderation.OverrideStatusInput{
		PostID: id,
		Status: domain.ModerationStatus(req.Status),
		Reason: req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "post": toPostJSON(post)})
}

// Queue handles GET /moderation/queue.
func (h *ModerationHandler) Queue(w http.ResponseWriter, r *http.Request) {
	input, err := parseQueueQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListQueue(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(page.Items))
	for _, it := range page.Items {
		if it.PostID != nil {
			ids = append(ids, *it.PostID)
		}
	}
	posts, err := dataloader.LoadPosts(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]queueItemJSON, 0, len(page.Items))
	for i := range page.Items {
		it := &page.Items[i]
		var post *domain.Post
		if it.PostID != nil {
			post = posts[*it.PostID]
		}
		items = append(items, toQueueItemJSON(it, post))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": page.Total})
}

func parseQueueQuery(r *http.Request) (moderation.ListQueueInput, error) {
	q := r.URL.Query()
	var input moderation.ListQueueInput

	if v := q.Get("status"); v != "" {
		s := domain.ReviewStatus(v)
		input.Status = &s
	}
	if v := q.Get("contentType"); v != "" {
		c := domain.ContentType(v)
		input.ContentType = &c
	}

	minRisk, err := queryInt(r, "minRisk")
	if err != nil {
		return input, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return input, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return input, err
	}
	input.MinRisk = minRisk
	input.Limit = intOr(limit, 0)
	input.Offset = intOr(offset, 0)
	return input, nil
}

// Item handles GET /moderation/queue/{id}.
func (h *ModerationHandler) Item(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	detail, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var post *domain.Post
	if detail.Item.PostID != nil {
		posts, err := dataloader.LoadPosts(r.Context(), []uuid.UUID{*detail.Item.PostID})
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		post = posts[*detail.Item.PostID]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"item":    toQueueItemJSON(detail.Item, post),
		"history": toLogEntriesJSON(detail.History),
	})
}

// Logs handles GET /moderation/logs.
func (h *ModerationHandler) Logs(w http.ResponseWriter, r *http.Request) {
	since, err := queryTime(r, "since")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input := moderation.ListLogsInput{
		Limit:     intOr(limit, 0),
		HumanOnly: r.URL.Query().Get("humanOnly") == "true",
	}
	if since != nil {
		input.Since = *since
	}

	entries, err := h.svc.ListLogs(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"logs": toLogEntriesJSON(entries)})
}

// Stats handles GET /moderation/stats.
func (h *ModerationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsJSON(stats))
}

// Performance handles GET /moderation/performance.
func (h *ModerationHandler) Performance(w http.ResponseWriter, r *http.Request) {
	from, err := queryTime(r, "from")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ComputeMetrics(r.Context(), moderation.PerformanceInput{
		Timeframe: r.URL.Query().Get("timeframe"),
		From:      from,
		To:        to,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"performance":     toPerformanceJSON(res.Report),
		"recommendations": res.Recommendations,
	})
}
