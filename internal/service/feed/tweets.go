package feed

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
)

// TweetScope narrows a tweet listing to one channel when OwnerID is set.
type TweetScope struct {
	OwnerID *uuid.UUID
}

// ListTweets returns one page of tweets. Tweets sort by upload date only.
func (s *Service) ListTweets(ctx context.Context, scope TweetScope, q domain.ListQuery) (domain.Page[domain.TweetView], error) {
	viewer := viewerFromCtx(ctx)

	return compose(ctx, s, pipeline[domain.Tweet, domain.TweetView]{
		name:  "tweets",
		sorts: []domain.SortKey{domain.SortKeyUploadDate},
		scan: func(ctx context.Context, req scanRequest) ([]domain.Tweet, int64, error) {
			return s.tweets.Scan(ctx, domain.TweetFilter{
				OwnerID: scope.OwnerID,
				Terms:   req.Terms,
				Sort:    req.Sort,
				Limit:   req.Limit,
				Offset:  req.Offset,
			})
		},
		spec: join.Spec{}.
			WithOwner().
			WithLikeCount(domain.LikeTargetTweet).
			WithViewerLikeFlag(domain.LikeTargetTweet, viewer),
		ref:  func(tw domain.Tweet) join.Ref { return join.Ref{ID: tw.ID, ChannelID: tw.OwnerID} },
		view: tweetView,
	}, q)
}

func tweetView(tw domain.Tweet, r join.Resolved) domain.TweetView {
	return domain.TweetView{
		ID:        tw.ID,
		Content:   tw.Content,
		CreatedAt: tw.CreatedAt,
		UpdatedAt: tw.UpdatedAt,
		Owner:     r.Owner,
		LikeCount: r.LikeCount,
		IsLiked:   r.IsLiked,
	}
}
