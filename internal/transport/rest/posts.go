package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
	"github.com/pathpiper/pathpiper-backend/internal/service/engagement"
)

type engagementService interface {
	GetPost(ctx context.Context, postID uuid.UUID) (engagement.PostView, error)
	ToggleLike(ctx context.Context, postID uuid.UUID) (engagement.ToggleResult, error)
	ToggleBookmark(ctx context.Context, postID uuid.UUID) (engagement.ToggleResult, error)
	Share(ctx context.Context, postID uuid.UUID) (engagement.ShareResult, error)
	CreateComment(ctx context.Context, input engagement.CreateCommentInput) (engagement.CommentResult, error)
	ListComments(ctx context.Context, input engagement.ListCommentsInput) (engagement.CommentPage, error)
	DeleteComment(ctx context.Context, postID, commentID uuid.UUID) (engagement.CommentResult, error)
	Recount(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
}

// PostHandler serves post reads and engagement actions.
type PostHandler struct {
	svc engagementService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc engagementService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "posts")}
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"post":       toPostJSON(&view.Post),
		"liked":      view.Liked,
		"bookmarked": view.Bookmarked,
	})
}

// Like handles POST /posts/{id}/like.
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ToggleLike(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"liked":     res.Active,
		"likeCount": res.Count,
	})
}

// Bookmark handles POST /posts/{id}/bookmark.
func (h *PostHandler) Bookmark(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ToggleBookmark(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "bookmarked": res.Active})
}

// Share handles POST /posts/{id}/share.
func (h *PostHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Share(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "shareCount": res.ShareCount})
}

type commentRequest struct {
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parentId"`
}

// CreateComment handles POST /posts/{id}/comment.
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.CreateComment(r.Context(), engagement.CreateCommentInput{
		PostID:   id,
		ParentID: req.ParentID,
		Content:  req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"comment":      toCommentJSON(res.Comment),
		"commentCount": res.CommentCount,
	})
}

// ListComments handles GET /posts/{id}/comment.
func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListComments(r.Context(), engagement.ListCommentsInput{
		PostID: id,
		Limit:  intOr(limit, 0),
		Offset: intOr(offset, 0),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comments := make([]*commentJSON, 0, len(page.Comments))
	for i := range page.Comments {
		comments = append(comments, toCommentJSON(&page.Comments[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments, "total": page.Total})
}

// DeleteComment handles DELETE /posts/{id}/comment/{commentId}.
func (h *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	commentID, err := pathUUID(r, "commentId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.DeleteComment(r.Context(), postID, commentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "commentCount": res.CommentCount})
}

// Recount handles POST /posts/{id}/recount.
func (h *PostHandler) Recount(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	post, err := h.svc.Recount(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "post": toPostJSON(post)})
}
