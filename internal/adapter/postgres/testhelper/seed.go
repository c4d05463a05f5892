package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedNamedUser(t, pool, "user"+uniqueSuffix(), "Test User")
}

// SeedNamedUser creates a user with the given username and full name.
func SeedNamedUser(t *testing.T, pool *pgxpool.Pool, username, fullName string) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     username + "-" + uniqueSuffix() + "@example.com",
		Username:  username,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, full_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.FullName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// VideoOption customizes a seeded video.
type VideoOption func(*domain.Video)

// WithViews sets the view count.
func WithViews(n int64) VideoOption { return func(v *domain.Video) { v.Views = n } }

// WithDuration sets the duration in seconds.
func WithDuration(d float64) VideoOption { return func(v *domain.Video) { v.Duration = d } }

// WithTitle sets the title.
func WithTitle(title string) VideoOption { return func(v *domain.Video) { v.Title = title } }

// WithDescription sets the description.
func WithDescription(d string) VideoOption { return func(v *domain.Video) { v.Description = d } }

// Unpublished marks the video as unpublished.
func Unpublished() VideoOption { return func(v *domain.Video) { v.IsPublished = false } }

// WithCreatedAt sets the upload time.
func WithCreatedAt(ts time.Time) VideoOption {
	return func(v *domain.Video) { v.CreatedAt = ts; v.UpdatedAt = ts }
}

// SeedVideo creates a published video owned by ownerID.
func SeedVideo(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts ...VideoOption) domain.Video {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	v := domain.Video{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		VideoURL:     "https://media.example.com/videos/" + suffix + ".mp4",
		ThumbnailURL: "https://media.example.com/images/" + suffix + ".png",
		Title:        "Video " + suffix,
		Description:  "Description " + suffix,
		Duration:     60,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(&v)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO videos (id, owner_id, video_url, thumbnail_url, title, description,
		                     duration, views, is_published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		v.ID, v.OwnerID, v.VideoURL, v.ThumbnailURL, v.Title, v.Description,
		v.Duration, v.Views, v.IsPublished, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVideo: %v", err)
	}
	return v
}

// SeedComment creates a comment on videoID.
func SeedComment(t *testing.T, pool *pgxpool.Pool, videoID, ownerID uuid.UUID, content string) domain.Comment {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Comment{ID: uuid.New(), VideoID: videoID, OwnerID: ownerID, Content: content, CreatedAt: now, UpdatedAt: now}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, video_id, owner_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.VideoID, c.OwnerID, c.Content, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}

// SeedTweet creates a tweet owned by ownerID.
func SeedTweet(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, content string) domain.Tweet {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tw := domain.Tweet{ID: uuid.New(), OwnerID: ownerID, Content: content, CreatedAt: now, UpdatedAt: now}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tweets (id, owner_id, content, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		tw.ID, tw.OwnerID, tw.Content, tw.CreatedAt, tw.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTweet: %v", err)
	}
	return tw
}

// SeedLike creates a like edge.
func SeedLike(t *testing.T, pool *pgxpool.Pool, actorID uuid.UUID, kind domain.LikeTarget, targetID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO likes (actor_id, target_kind, target_id) VALUES ($1, $2, $3)`,
		actorID, string(kind), targetID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLike: %v", err)
	}
}

// SeedSubscription creates a subscription edge.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, subscriberID, channelID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO subscriptions (subscriber_id, channel_id) VALUES ($1, $2)`,
		subscriberID, channelID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscription: %v", err)
	}
}

// SeedPlaylist creates a playlist owned by ownerID with the given videos in order.
func SeedPlaylist(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, isPublic bool, videoIDs ...uuid.UUID) domain.Playlist {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Playlist{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Playlist " + uniqueSuffix(),
		Description: "seeded",
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO playlists (id, owner_id, name, description, is_public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.OwnerID, p.Name, p.Description, p.IsPublic, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlaylist: %v", err)
	}

	for _, vid := range videoIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2)`, p.ID, vid,
		); err != nil {
			t.Fatalf("testhelper: SeedPlaylist add video: %v", err)
		}
	}
	return p
}
