package domain

// LikeTarget identifies the kind of entity a like edge points at.
// Stored as-is in likes.target_kind.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

func (t LikeTarget) String() string { return string(t) }

func (t LikeTarget) IsValid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

// EdgeKind identifies a togglable engagement edge: a like on one of the
// three like targets, or a subscription to a channel.
type EdgeKind string

const (
	EdgeKindVideo   EdgeKind = "video"
	EdgeKindComment EdgeKind = "comment"
	EdgeKindTweet   EdgeKind = "tweet"
	EdgeKindChannel EdgeKind = "channel"
)

func (k EdgeKind) String() string { return string(k) }

func (k EdgeKind) IsValid() bool {
	switch k {
	case EdgeKindVideo, EdgeKindComment, EdgeKindTweet, EdgeKindChannel:
		return true
	}
	return false
}

// LikeTarget returns the like target for like edge kinds. ok is false for
// channel subscriptions.
func (k EdgeKind) LikeTarget() (LikeTarget, bool) {
	switch k {
	case EdgeKindVideo:
		return LikeTargetVideo, true
	case EdgeKindComment:
		return LikeTargetComment, true
	case EdgeKindTweet:
		return LikeTargetTweet, true
	}
	return "", false
}

// SortKey names a client-visible sort field.
type SortKey string

const (
	SortKeyUploadDate SortKey = "uploadDate"
	SortKeyDuration   SortKey = "duration"
	SortKeyPopularity SortKey = "popularity"
)

func (k SortKey) String() string { return string(k) }

// DefaultOrder returns the direction used when the client gives none.
func (k SortKey) DefaultOrder() SortOrder {
	if k == SortKeyDuration {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// SortOrder is a sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}
