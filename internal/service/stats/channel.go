package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
)

// ChannelStats returns the totals of a channel. A nil channelID selects the
// viewer's own channel. Unpublished videos are counted.
func (s *Service) ChannelStats(ctx context.Context, channelID uuid.UUID) (domain.ChannelStats, error) {
	if channelID == uuid.Nil {
		viewer := viewerFromCtx(ctx)
		if viewer.IsAnonymous() {
			return domain.ChannelStats{}, domain.ErrUnauthorized
		}
		channelID = viewer.ID
	}

	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return domain.ChannelStats{}, fmt.Errorf("check channel: %w", err)
	}
	if !exists {
		return domain.ChannelStats{}, fmt.Errorf("channel %s: %w", channelID, domain.ErrNotFound)
	}

	videos, err := s.videos.ViewsByOwner(ctx, channelID)
	if err != nil {
		return domain.ChannelStats{}, fmt.Errorf("channel videos: %w", err)
	}

	stats := domain.ChannelStats{TotalVideos: int64(len(videos))}
	refs := make([]join.Ref, len(videos))
	for i, v := range videos {
		stats.TotalViews += v.Views
		refs[i] = join.Ref{ID: v.ID, ChannelID: channelID}
	}

	likes, err := s.joins.Resolve(ctx, join.Spec{}.WithLikeCount(domain.LikeTargetVideo), refs)
	if err != nil {
		return domain.ChannelStats{}, fmt.Errorf("channel likes: %w", err)
	}
	for _, r := range likes {
		stats.TotalLikes += r.LikeCount
	}

	subs, err := s.joins.Resolve(ctx, join.Spec{}.WithSubscriberCount(), []join.Ref{{ID: channelID, ChannelID: channelID}})
	if err != nil {
		return domain.ChannelStats{}, fmt.Errorf("channel subscribers: %w", err)
	}
	stats.TotalSubscribers = subs[channelID].SubscriberCount

	s.log.DebugContext(ctx, "channel stats",
		slog.String("channel_id", channelID.String()),
		slog.Int64("videos", stats.TotalVideos),
	)
	return stats, nil
}
