package domain

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered, duplicate-free list of videos curated by a user.
type Playlist struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlaylistUpdateParams holds the mutable playlist fields. nil means unchanged.
type PlaylistUpdateParams struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// PlaylistTotals aggregates the published member videos of a playlist.
type PlaylistTotals struct {
	TotalVideos int64 `json:"totalVideos"`
	TotalViews  int64 `json:"totalViews"`
}
