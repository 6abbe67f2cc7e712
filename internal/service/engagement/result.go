package engagement

import "github.com/pathpiper/pathpiper-backend/internal/domain"

// ToggleResult is the state of a toggle edge after a toggle.
// Count is the post's like count for likes and zero for bookmarks.
type ToggleResult struct {
	Active bool
	Count  int
}

// ShareResult is returned after a share is recorded.
type ShareResult struct {
	ShareCount int
}

// CommentResult is returned after a comment is created or deleted.
type CommentResult struct {
	Comment      *domain.Comment
	CommentCount int
}

// CommentPage is one page of a post's comments.
type CommentPage struct {
	Comments []domain.Comment
	Total    int
}

// PostView is a post with the viewer's own engagement flags.
type PostView struct {
	Post       domain.Post
	Liked      bool
	Bookmarked bool
}
