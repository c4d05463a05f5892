package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/metrics"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
)

// ScopeKind selects which videos a listing starts from.
type ScopeKind int

const (
	// ScopePublic lists published videos, optionally of one channel.
	ScopePublic ScopeKind = iota
	// ScopeOwner lists all of the viewer's own videos, unpublished included.
	ScopeOwner
)

// VideoScope is the base predicate of a video listing. ChannelID applies to
// ScopePublic only.
type VideoScope struct {
	Kind      ScopeKind
	ChannelID *uuid.UUID
}

var videoSorts = []domain.SortKey{domain.SortKeyUploadDate, domain.SortKeyDuration, domain.SortKeyPopularity}

// ListVideos returns one page of videos in scope.
func (s *Service) ListVideos(ctx context.Context, scope VideoScope, q domain.ListQuery) (domain.Page[domain.VideoView], error) {
	viewer := viewerFromCtx(ctx)

	base := domain.VideoFilter{}
	switch scope.Kind {
	case ScopePublic:
		base.PublishedOnly = true
		base.OwnerID = scope.ChannelID
	case ScopeOwner:
		if viewer.IsAnonymous() {
			return domain.Page[domain.VideoView]{}, domain.ErrUnauthorized
		}
		if scope.ChannelID != nil {
			return domain.Page[domain.VideoView]{}, domain.NewValidationError("userId", "not allowed for own channel listing")
		}
		base.OwnerID = &viewer.ID
	default:
		return domain.Page[domain.VideoView]{}, domain.NewValidationError("scope", "unknown video scope")
	}

	name := "videos"
	if scope.Kind == ScopeOwner {
		name = "own_videos"
	}
	return compose(ctx, s, s.videoPipeline(name, viewer, base), q)
}

// ListLikedVideos returns one page of published videos the viewer likes.
func (s *Service) ListLikedVideos(ctx context.Context, q domain.ListQuery) (domain.Page[domain.VideoView], error) {
	viewer := viewerFromCtx(ctx)
	if viewer.IsAnonymous() {
		return domain.Page[domain.VideoView]{}, domain.ErrUnauthorized
	}

	base := domain.VideoFilter{PublishedOnly: true, LikedBy: &viewer.ID}
	return compose(ctx, s, s.videoPipeline("liked_videos", viewer, base), q)
}

// ListWatchHistory returns one page of the viewer's watched videos, most
// recently first-watched first. Search and sort do not apply.
func (s *Service) ListWatchHistory(ctx context.Context, page domain.PageRequest) (domain.Page[domain.VideoView], error) {
	defer metrics.ObserveFeed("watch_history", time.Now())

	viewer := viewerFromCtx(ctx)
	if viewer.IsAnonymous() {
		return domain.Page[domain.VideoView]{}, domain.ErrUnauthorized
	}
	page, err := s.limits.Resolve(page)
	if err != nil {
		return domain.Page[domain.VideoView]{}, err
	}

	ids, total, err := s.videos.WatchedIDs(ctx, viewer.ID, page.PageSize, page.Offset())
	if err != nil {
		return domain.Page[domain.VideoView]{}, fmt.Errorf("watch history: %w", err)
	}
	found, err := s.videos.GetByIDs(ctx, ids)
	if err != nil {
		return domain.Page[domain.VideoView]{}, fmt.Errorf("watch history videos: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Video, len(found))
	for _, v := range found {
		byID[v.ID] = v
	}
	rows := make([]domain.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			rows = append(rows, v)
		}
	}

	views, err := attach(ctx, s.joins, s.videoPipeline("watch_history", viewer, domain.VideoFilter{}), rows)
	if err != nil {
		return domain.Page[domain.VideoView]{}, fmt.Errorf("compose watch history: %w", err)
	}
	return domain.NewPage(views, total, page), nil
}

// GetVideo returns the detail view of one video and records the view.
// Unpublished videos are visible to their owner only. The view counter and
// the watch history are updated after the detail is composed; a failure of
// either is logged and does not fail the read.
func (s *Service) GetVideo(ctx context.Context, videoID uuid.UUID) (*domain.VideoDetail, error) {
	viewer := viewerFromCtx(ctx)

	v, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	if !v.VisibleTo(viewer.ID) {
		return nil, fmt.Errorf("video %s: %w", videoID, domain.ErrNotFound)
	}

	spec := videoSpec(viewer).WithSubscriberCount().WithViewerSubscribedFlag(viewer)
	joined, err := s.joins.Resolve(ctx, spec, []join.Ref{{ID: v.ID, ChannelID: v.OwnerID}})
	if err != nil {
		return nil, fmt.Errorf("compose video: %w", err)
	}
	r := joined[v.ID]

	detail := &domain.VideoDetail{
		VideoView:            videoView(*v, r),
		OwnerSubscriberCount: r.SubscriberCount,
		IsSubscribed:         r.IsSubscribed,
	}

	if err := s.videos.IncrementViews(ctx, v.ID); err != nil {
		s.log.WarnContext(ctx, "increment views failed",
			slog.String("video_id", v.ID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		detail.Views++
	}
	if !viewer.IsAnonymous() {
		if err := s.videos.AddToWatchHistory(ctx, viewer.ID, v.ID); err != nil {
			s.log.WarnContext(ctx, "watch history insert failed",
				slog.String("video_id", v.ID.String()),
				slog.String("user_id", viewer.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return detail, nil
}

func (s *Service) videoPipeline(name string, viewer domain.Viewer, base domain.VideoFilter) pipeline[domain.Video, domain.VideoView] {
	return pipeline[domain.Video, domain.VideoView]{
		name:  name,
		sorts: videoSorts,
		scan: func(ctx context.Context, req scanRequest) ([]domain.Video, int64, error) {
			f := base
			f.Terms = req.Terms
			f.Sort = req.Sort
			f.Limit = req.Limit
			f.Offset = req.Offset
			return s.videos.Scan(ctx, f)
		},
		spec: videoSpec(viewer),
		ref:  func(v domain.Video) join.Ref { return join.Ref{ID: v.ID, ChannelID: v.OwnerID} },
		view: videoView,
	}
}

func videoSpec(viewer domain.Viewer) join.Spec {
	return join.Spec{}.
		WithOwner().
		WithLikeCount(domain.LikeTargetVideo).
		WithViewerLikeFlag(domain.LikeTargetVideo, viewer)
}

func videoView(v domain.Video, r join.Resolved) domain.VideoView {
	view := domain.NewVideoView(v)
	view.Owner = r.Owner
	view.LikeCount = r.LikeCount
	view.IsLiked = r.IsLiked
	return view
}
