// Package stats computes channel and playlist aggregates.
package stats

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type videoRepo interface {
	ViewsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.VideoViews, error)
}

type playlistRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, includePrivate bool) ([]domain.Playlist, error)
	PublishedVideos(ctx context.Context, playlistID uuid.UUID) ([]domain.Video, error)
	TotalsByPlaylists(ctx context.Context, playlistIDs []uuid.UUID) (map[uuid.UUID]domain.PlaylistTotals, error)
}

type joinResolver interface {
	Resolve(ctx context.Context, spec join.Spec, rows []join.Ref) (map[uuid.UUID]join.Resolved, error)
}

// Service provides channel statistics and playlist views.
type Service struct {
	users     userRepo
	videos    videoRepo
	playlists playlistRepo
	joins     joinResolver
	log       *slog.Logger
}

// NewService creates a new stats service.
func NewService(
	log *slog.Logger,
	users userRepo,
	videos videoRepo,
	playlists playlistRepo,
	joins joinResolver,
) *Service {
	return &Service{
		users:     users,
		videos:    videos,
		playlists: playlists,
		joins:     joins,
		log:       log.With("service", "stats"),
	}
}

func viewerFromCtx(ctx context.Context) domain.Viewer {
	return domain.ViewerOf(ctxutil.ViewerID(ctx))
}
