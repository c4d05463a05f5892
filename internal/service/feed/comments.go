package feed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
)

// ListComments returns one page of a video's comment thread. Comments sort
// by upload date only.
func (s *Service) ListComments(ctx context.Context, videoID uuid.UUID, q domain.ListQuery) (domain.Page[domain.CommentView], error) {
	viewer := viewerFromCtx(ctx)

	v, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return domain.Page[domain.CommentView]{}, fmt.Errorf("get video: %w", err)
	}
	if !v.VisibleTo(viewer.ID) {
		return domain.Page[domain.CommentView]{}, fmt.Errorf("video %s: %w", videoID, domain.ErrNotFound)
	}

	return compose(ctx, s, pipeline[domain.Comment, domain.CommentView]{
		name:  "comments",
		sorts: []domain.SortKey{domain.SortKeyUploadDate},
		scan: func(ctx context.Context, req scanRequest) ([]domain.Comment, int64, error) {
			return s.comments.Scan(ctx, domain.CommentFilter{
				VideoID: videoID,
				Terms:   req.Terms,
				Sort:    req.Sort,
				Limit:   req.Limit,
				Offset:  req.Offset,
			})
		},
		spec: join.Spec{}.
			WithOwner().
			WithLikeCount(domain.LikeTargetComment).
			WithViewerLikeFlag(domain.LikeTargetComment, viewer),
		ref:  func(c domain.Comment) join.Ref { return join.Ref{ID: c.ID, ChannelID: c.OwnerID} },
		view: commentView,
	}, q)
}

func commentView(c domain.Comment, r join.Resolved) domain.CommentView {
	return domain.CommentView{
		ID:        c.ID,
		VideoID:   c.VideoID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Owner:     r.Owner,
		LikeCount: r.LikeCount,
		IsLiked:   r.IsLiked,
	}
}
