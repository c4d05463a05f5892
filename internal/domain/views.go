package domain

import (
	"time"

	"github.com/google/uuid"
)

// Read models returned by listings. Owner is nil when the owning user no
// longer exists. Viewer-relative flags are nil for anonymous viewers.

// VideoView is a video annotated with its owner and engagement counts.
type VideoView struct {
	ID           uuid.UUID `json:"id"`
	VideoURL     string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Owner        *Owner    `json:"owner"`
	LikeCount    int64     `json:"likesCount"`
	IsLiked      *bool     `json:"isLiked,omitempty"`
}

// NewVideoView copies the stored video fields into a view.
func NewVideoView(v Video) VideoView {
	return VideoView{
		ID:           v.ID,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Title:        v.Title,
		Description:  v.Description,
		Duration:     v.Duration,
		Views:        v.Views,
		IsPublished:  v.IsPublished,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// VideoDetail is the single-video view: the video plus its channel's
// subscriber count and whether the viewer subscribes to it.
type VideoDetail struct {
	VideoView
	OwnerSubscriberCount int64 `json:"ownerSubscribersCount"`
	IsSubscribed         *bool `json:"isSubscribed,omitempty"`
}

// VideoSummary is the compact video projection embedded in channel listings.
type VideoSummary struct {
	ID           uuid.UUID `json:"id"`
	VideoURL     string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewVideoSummary projects a video into a VideoSummary.
func NewVideoSummary(v Video) VideoSummary {
	return VideoSummary{
		ID:           v.ID,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Title:        v.Title,
		Description:  v.Description,
		Duration:     v.Duration,
		Views:        v.Views,
		CreatedAt:    v.CreatedAt,
	}
}

// CommentView is a comment annotated with its owner and like count.
type CommentView struct {
	ID        uuid.UUID `json:"id"`
	VideoID   uuid.UUID `json:"video"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     *Owner    `json:"owner"`
	LikeCount int64     `json:"likesCount"`
	IsLiked   *bool     `json:"isLiked,omitempty"`
}

// TweetView is a tweet annotated with its owner and like count.
type TweetView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     *Owner    `json:"owner"`
	LikeCount int64     `json:"likesCount"`
	IsLiked   *bool     `json:"isLiked,omitempty"`
}

// SubscriberEdge is one row of a subscription listing: the user on the far
// side of the edge and when the edge was created.
type SubscriberEdge struct {
	UserID    uuid.UUID
	CreatedAt time.Time
}

// SubscriberView is a subscriber of a channel. IsMutual reports whether the
// channel subscribes back.
type SubscriberView struct {
	Owner
	SubscriberCount int64     `json:"subscribersCount"`
	IsMutual        bool      `json:"subscribedToSubscriber"`
	IsSubscribed    *bool     `json:"isSubscribed,omitempty"`
	SubscribedAt    time.Time `json:"subscribedAt"`
}

// ChannelView is a channel a user subscribes to.
type ChannelView struct {
	Owner
	SubscriberCount int64         `json:"subscribersCount"`
	LatestVideo     *VideoSummary `json:"latestVideo"`
	IsSubscribed    *bool         `json:"isSubscribed,omitempty"`
	SubscribedAt    time.Time     `json:"subscribedAt"`
}

// ChannelStats aggregates a channel's content and audience. Unpublished
// videos are included.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}

// PlaylistView is a playlist with its owner and published-member totals.
type PlaylistView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Owner       *Owner    `json:"owner"`
	PlaylistTotals
}

// NewPlaylistView copies the stored playlist fields into a view.
func NewPlaylistView(p Playlist) PlaylistView {
	return PlaylistView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsPublic:    p.IsPublic,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PlaylistDetail is a playlist with its published member videos in
// insertion order.
type PlaylistDetail struct {
	PlaylistView
	Videos []VideoView `json:"videos"`
}
