package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a feed content item. Counters are materialized from the
// engagement edge tables and only change in the same transaction as
// the edge rows they mirror.
type Post struct {
	ID               uuid.UUID
	AuthorID         uuid.UUID
	Body             string
	ModerationStatus ModerationStatus
	LikesCount       int
	CommentsCount    int
	SharesCount      int
	EngagementScore  int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EngagementCounts is the set of counters derived from edge rows.
type EngagementCounts struct {
	Likes    int
	Comments int
	Shares   int
}

// Score returns the weighted engagement score for the counts.
func (c EngagementCounts) Score() int {
	return c.Likes*EngagementLike.Weight() +
		c.Comments*EngagementComment.Weight() +
		c.Shares*EngagementShare.Weight()
}

// Comment is a comment edge on a post. ParentID is set for replies.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	ParentID  *uuid.UUID
	Content   string
	CreatedAt time.Time
}

// MaxCommentLength bounds the sanitized comment body, in runes.
const MaxCommentLength = 2000
