package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/content"
	"github.com/heartmarshall/vidstream-backend/internal/service/engagement"
	"github.com/heartmarshall/vidstream-backend/internal/service/feed"
	"github.com/heartmarshall/vidstream-backend/internal/service/playlist"
	"github.com/heartmarshall/vidstream-backend/internal/service/video"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubFeed serves every read path. Calls are recorded for assertions.
type stubFeed struct {
	err        error
	videoScope feed.VideoScope
	tweetScope feed.TweetScope
	query      domain.ListQuery
	page       domain.PageRequest
	videoID    uuid.UUID
}

func (s *stubFeed) ListVideos(_ context.Context, scope feed.VideoScope, q domain.ListQuery) (domain.Page[domain.VideoView], error) {
	s.videoScope, s.query = scope, q
	return domain.Page[domain.VideoView]{Items: []domain.VideoView{}}, s.err
}

func (s *stubFeed) GetVideo(_ context.Context, videoID uuid.UUID) (*domain.VideoDetail, error) {
	s.videoID = videoID
	if s.err != nil {
		return nil, s.err
	}
	return &domain.VideoDetail{}, nil
}

func (s *stubFeed) ListWatchHistory(_ context.Context, page domain.PageRequest) (domain.Page[domain.VideoView], error) {
	s.page = page
	return domain.Page[domain.VideoView]{}, s.err
}

func (s *stubFeed) ListLikedVideos(_ context.Context, q domain.ListQuery) (domain.Page[domain.VideoView], error) {
	s.query = q
	return domain.Page[domain.VideoView]{}, s.err
}

func (s *stubFeed) ListComments(_ context.Context, videoID uuid.UUID, q domain.ListQuery) (domain.Page[domain.CommentView], error) {
	s.videoID, s.query = videoID, q
	return domain.Page[domain.CommentView]{}, s.err
}

func (s *stubFeed) ListTweets(_ context.Context, scope feed.TweetScope, q domain.ListQuery) (domain.Page[domain.TweetView], error) {
	s.tweetScope, s.query = scope, q
	return domain.Page[domain.TweetView]{}, s.err
}

type stubVideos struct {
	err     error
	publish func(video.PublishInput)
	update  video.UpdateInput
	deleted uuid.UUID
}

func (s *stubVideos) Publish(_ context.Context, input video.PublishInput) (*domain.Video, error) {
	if s.publish != nil {
		s.publish(input)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Video{ID: uuid.New(), Title: input.Title}, nil
}

func (s *stubVideos) Update(_ context.Context, input video.UpdateInput) (*domain.Video, error) {
	s.update = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Video{ID: input.VideoID}, nil
}

func (s *stubVideos) Delete(_ context.Context, videoID uuid.UUID) error {
	s.deleted = videoID
	return s.err
}

func (s *stubVideos) TogglePublish(_ context.Context, videoID uuid.UUID) (*domain.Video, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Video{ID: videoID}, nil
}

type stubContent struct {
	err     error
	comment content.AddCommentInput
	tweet   content.UpdateTweetInput
}

func (s *stubContent) AddComment(_ context.Context, input content.AddCommentInput) (*domain.Comment, error) {
	s.comment = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Comment{ID: uuid.New(), VideoID: input.VideoID, Content: input.Content}, nil
}

func (s *stubContent) UpdateComment(_ context.Context, input content.UpdateCommentInput) (*domain.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Comment{ID: input.CommentID, Content: input.Content}, nil
}

func (s *stubContent) DeleteComment(context.Context, uuid.UUID) error { return s.err }

func (s *stubContent) CreateTweet(_ context.Context, input content.CreateTweetInput) (*domain.Tweet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Tweet{ID: uuid.New(), Content: input.Content}, nil
}

func (s *stubContent) UpdateTweet(_ context.Context, input content.UpdateTweetInput) (*domain.Tweet, error) {
	s.tweet = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Tweet{ID: input.TweetID, Content: input.Content}, nil
}

func (s *stubContent) DeleteTweet(context.Context, uuid.UUID) error { return s.err }

type stubEngagement struct {
	err   error
	input engagement.ToggleInput
	calls int
}

func (s *stubEngagement) Toggle(_ context.Context, input engagement.ToggleInput) (engagement.ToggleResult, error) {
	s.calls++
	s.input = input
	if s.err != nil {
		return engagement.ToggleResult{}, s.err
	}
	return engagement.ToggleResult{Kind: input.Kind, TargetID: input.TargetID, Present: true}, nil
}

type stubGraph struct {
	err       error
	channelID uuid.UUID
	page      domain.PageRequest
}

func (s *stubGraph) ListSubscribers(_ context.Context, channelID uuid.UUID, page domain.PageRequest) (domain.Page[domain.SubscriberView], error) {
	s.channelID, s.page = channelID, page
	return domain.Page[domain.SubscriberView]{}, s.err
}

func (s *stubGraph) ListSubscribedChannels(_ context.Context, subscriberID uuid.UUID, page domain.PageRequest) (domain.Page[domain.ChannelView], error) {
	s.channelID, s.page = subscriberID, page
	return domain.Page[domain.ChannelView]{}, s.err
}

type stubPlaylists struct {
	err    error
	create playlist.CreateInput
	member playlist.MemberInput
}

func (s *stubPlaylists) Create(_ context.Context, input playlist.CreateInput) (*domain.Playlist, error) {
	s.create = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Playlist{ID: uuid.New(), Name: input.Name}, nil
}

func (s *stubPlaylists) Update(_ context.Context, input playlist.UpdateInput) (*domain.Playlist, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Playlist{ID: input.PlaylistID}, nil
}

func (s *stubPlaylists) Delete(context.Context, uuid.UUID) error { return s.err }

func (s *stubPlaylists) AddVideo(_ context.Context, input playlist.MemberInput) error {
	s.member = input
	return s.err
}

func (s *stubPlaylists) RemoveVideo(_ context.Context, input playlist.MemberInput) error {
	s.member = input
	return s.err
}

type stubStats struct {
	err       error
	channelID uuid.UUID
}

func (s *stubStats) ChannelStats(_ context.Context, channelID uuid.UUID) (domain.ChannelStats, error) {
	s.channelID = channelID
	return domain.ChannelStats{TotalVideos: 3}, s.err
}

func (s *stubStats) PlaylistDetail(_ context.Context, playlistID uuid.UUID) (*domain.PlaylistDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.PlaylistDetail{}, nil
}

func (s *stubStats) UserPlaylists(context.Context, uuid.UUID) ([]domain.PlaylistView, error) {
	return []domain.PlaylistView{}, s.err
}

type stubSearchHistory struct {
	err     error
	query   string
	cleared int64
}

func (s *stubSearchHistory) Record(_ context.Context, query string) (*domain.SearchHistoryEntry, error) {
	s.query = query
	if s.err != nil {
		return nil, s.err
	}
	return &domain.SearchHistoryEntry{ID: uuid.New(), Query: query}, nil
}

func (s *stubSearchHistory) List(context.Context, domain.PageRequest) (domain.Page[domain.SearchHistoryEntry], error) {
	return domain.Page[domain.SearchHistoryEntry]{}, s.err
}

func (s *stubSearchHistory) Delete(context.Context, uuid.UUID) error { return s.err }

func (s *stubSearchHistory) Clear(context.Context) (int64, error) { return s.cleared, s.err }
