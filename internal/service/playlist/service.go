// Package playlist implements playlist curation.
package playlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

type playlistRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	Create(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PlaylistUpdateParams) (*domain.Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
}

type videoRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
}

// Service implements playlist operations.
type Service struct {
	log       *slog.Logger
	playlists playlistRepo
	videos    videoRepo
}

// NewService creates a new playlist service.
func NewService(log *slog.Logger, playlists playlistRepo, videos videoRepo) *Service {
	return &Service{
		log:       log.With("service", "playlist"),
		playlists: playlists,
		videos:    videos,
	}
}

// owned loads the playlist and verifies userID owns it.
func (s *Service) owned(ctx context.Context, userID, playlistID uuid.UUID) (*domain.Playlist, error) {
	p, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	if p.OwnerID != userID {
		return nil, fmt.Errorf("playlist %s: %w", playlistID, domain.ErrForbidden)
	}
	return p, nil
}
