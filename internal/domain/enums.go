package domain

// ModerationStatus is the visibility state of a content item.
type ModerationStatus string

const (
	ModerationStatusPendingReview ModerationStatus = "pending_review"
	ModerationStatusApproved      ModerationStatus = "approved"
	ModerationStatusRejected      ModerationStatus = "rejected"
	ModerationStatusFlagged       ModerationStatus = "flagged"
)

func (s ModerationStatus) String() string { return string(s) }

func (s ModerationStatus) IsValid() bool {
	switch s {
	case ModerationStatusPendingReview, ModerationStatusApproved, ModerationStatusRejected, ModerationStatusFlagged:
		return true
	}
	return false
}

// IsViolation reports whether an automated verdict with this status
// treats the content as violating policy.
func (s ModerationStatus) IsViolation() bool {
	return s == ModerationStatusFlagged || s == ModerationStatusRejected
}

// ReviewStatus is the lifecycle state of a review queue item.
// pending is the only non-terminal state.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

func (s ReviewStatus) IsTerminal() bool {
	return s == ReviewStatusApproved || s == ReviewStatusRejected
}

// ReviewAction is a moderator decision on a queue item.
type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

func (a ReviewAction) String() string { return string(a) }

func (a ReviewAction) IsValid() bool {
	return a == ReviewActionApprove || a == ReviewActionReject
}

// ReviewStatus returns the terminal queue state the action leads to.
func (a ReviewAction) ReviewStatus() ReviewStatus {
	if a == ReviewActionApprove {
		return ReviewStatusApproved
	}
	return ReviewStatusRejected
}

// ModerationStatus returns the content status mirrored by the action.
func (a ReviewAction) ModerationStatus() ModerationStatus {
	if a == ReviewActionApprove {
		return ModerationStatusApproved
	}
	return ModerationStatusRejected
}

// Role is a profile role. RoleService is never stored in profiles; it is
// assigned to tokens minted for backend services.
type Role string

const (
	RoleStudent     Role = "student"
	RoleMentor      Role = "mentor"
	RoleInstitution Role = "institution"
	RoleParent      Role = "parent"
	RoleModerator   Role = "moderator"
	RoleAdmin       Role = "admin"
	RoleService     Role = "service"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleInstitution, RoleParent, RoleModerator, RoleAdmin, RoleService:
		return true
	}
	return false
}

// CanModerate reports whether the role may act on the review queue.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleModerator
}

// ContentType names the kind of content that went through moderation.
type ContentType string

const (
	ContentTypePost    ContentType = "post"
	ContentTypeComment ContentType = "comment"
	ContentTypeProfile ContentType = "profile"
	ContentTypeMessage ContentType = "message"
)

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypePost, ContentTypeComment, ContentTypeProfile, ContentTypeMessage:
		return true
	}
	return false
}

// EngagementKind labels an engagement edge table.
type EngagementKind string

const (
	EngagementLike     EngagementKind = "like"
	EngagementBookmark EngagementKind = "bookmark"
	EngagementComment  EngagementKind = "comment"
	EngagementShare    EngagementKind = "share"
)

func (k EngagementKind) String() string { return string(k) }

// Weight is the contribution of one edge of this kind to a post's
// engagement score.
func (k EngagementKind) Weight() int {
	switch k {
	case EngagementLike:
		return 1
	case EngagementComment:
		return 2
	case EngagementShare:
		return 3
	}
	return 0
}
