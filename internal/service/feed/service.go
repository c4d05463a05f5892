// Package feed composes paginated listings. Every feed runs the same
// stages in a fixed order: scope filter, search, join, sort, paginate.
// Sort keys are columns of the primary entity, so filter, search, sort and
// paginate run as one store scan and the join touches only the page rows.
package feed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

type videoRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Video, error)
	Scan(ctx context.Context, f domain.VideoFilter) ([]domain.Video, int64, error)
	WatchedIDs(ctx context.Context, userID uuid.UUID, limit, offset int) ([]uuid.UUID, int64, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	AddToWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error
}

type commentRepo interface {
	Scan(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, int64, error)
}

type tweetRepo interface {
	Scan(ctx context.Context, f domain.TweetFilter) ([]domain.Tweet, int64, error)
}

type joinResolver interface {
	Resolve(ctx context.Context, spec join.Spec, rows []join.Ref) (map[uuid.UUID]join.Resolved, error)
}

// Config holds the page size bounds of every feed.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service provides the feed listings.
type Service struct {
	videos   videoRepo
	comments commentRepo
	tweets   tweetRepo
	joins    joinResolver
	limits   domain.PageLimits
	log      *slog.Logger
}

// NewService creates a new feed service. Zero page size bounds fall back
// to the domain defaults.
func NewService(
	log *slog.Logger,
	cfg Config,
	videos videoRepo,
	comments commentRepo,
	tweets tweetRepo,
	joins joinResolver,
) *Service {
	return &Service{
		videos:   videos,
		comments: comments,
		tweets:   tweets,
		joins:    joins,
		limits:   domain.PageLimits{DefaultSize: cfg.DefaultPageSize, MaxSize: cfg.MaxPageSize},
		log:      log.With("service", "feed"),
	}
}

func viewerFromCtx(ctx context.Context) domain.Viewer {
	return domain.ViewerOf(ctxutil.ViewerID(ctx))
}
