package domain

import "github.com/google/uuid"

// VideoFilter contains the scope, search and page of a video scan.
// Scope fields combine with AND.
type VideoFilter struct {
	// OwnerID restricts the scan to one channel.
	OwnerID *uuid.UUID

	// PublishedOnly hides unpublished videos.
	PublishedOnly bool

	// LikedBy restricts the scan to videos the given user has liked.
	LikedBy *uuid.UUID

	// Terms are normalized search terms. Every term must match the title,
	// the description, or the owner's username or full name.
	Terms []string

	Sort   SortSpec
	Limit  int
	Offset int
}

// CommentFilter contains the thread, search and page of a comment scan.
type CommentFilter struct {
	VideoID uuid.UUID
	Terms   []string
	Sort    SortSpec
	Limit   int
	Offset  int
}

// TweetFilter contains the scope, search and page of a tweet scan.
type TweetFilter struct {
	OwnerID *uuid.UUID
	Terms   []string
	Sort    SortSpec
	Limit   int
	Offset  int
}
