package engagement

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const (
	DefaultCommentLimit = 20
	MaxCommentLimit     = 100
)

// CreateCommentInput holds the parameters for commenting on a post.
type CreateCommentInput struct {
	PostID   uuid.UUID
	ParentID *uuid.UUID
	Content  string
}

// Validate checks the already sanitized input.
func (i CreateCommentInput) Validate() error {
	var errs domain.FieldErrors

	if i.PostID == uuid.Nil {
		errs.Add("post_id", "required")
	}
	if i.Content == "" {
		errs.Add("content", "required")
	}
	if utf8.RuneCountInString(i.Content) > domain.MaxCommentLength {
		errs.Add("content", "max 2000 characters")
	}

	return errs.Err()
}

// ListCommentsInput holds the parameters for listing a post's comments.
type ListCommentsInput struct {
	PostID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks paging bounds.
func (i ListCommentsInput) Validate() error {
	var errs domain.FieldErrors

	if i.PostID == uuid.Nil {
		errs.Add("post_id", "required")
	}
	if i.Limit < 0 || i.Limit > MaxCommentLimit {
		errs.Add("limit", "must be between 0 and 100")
	}
	if i.Offset < 0 {
		errs.Add("offset", "must be non-negative")
	}

	return errs.Err()
}
