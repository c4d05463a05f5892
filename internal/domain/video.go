package domain

import (
	"time"

	"github.com/google/uuid"
)

// Video is an uploaded video. Views are only incremented by the server.
type Video struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner"`
	VideoURL     string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VisibleTo reports whether userID may see the video: it is published or
// userID owns it. uuid.Nil sees published videos only.
func (v Video) VisibleTo(userID uuid.UUID) bool {
	return v.IsPublished || (userID != uuid.Nil && v.OwnerID == userID)
}

// VideoUpdateParams holds the mutable video fields. nil means unchanged.
type VideoUpdateParams struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
}

// VideoViews is the (id, views) projection used for channel statistics.
type VideoViews struct {
	ID    uuid.UUID
	Views int64
}
