package playlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

// Create creates a playlist owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Playlist, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	p, err := s.playlists.Create(ctx, &domain.Playlist{
		ID:          uuid.New(),
		OwnerID:     userID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		IsPublic:    isPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	s.log.InfoContext(ctx, "playlist created",
		slog.String("user_id", userID.String()),
		slog.String("playlist_id", p.ID.String()),
	)
	return p, nil
}

// Update changes the caller's playlist.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Playlist, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, userID, input.PlaylistID); err != nil {
		return nil, err
	}

	params := domain.PlaylistUpdateParams{IsPublic: input.IsPublic}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		params.Description = &desc
	}

	p, err := s.playlists.Update(ctx, input.PlaylistID, params)
	if err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}
	return p, nil
}

// Delete removes the caller's playlist. Memberships go with it.
func (s *Service) Delete(ctx context.Context, playlistID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if playlistID == uuid.Nil {
		return domain.NewValidationError("playlistId", "required")
	}
	if _, err := s.owned(ctx, userID, playlistID); err != nil {
		return err
	}

	if err := s.playlists.Delete(ctx, playlistID); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}

	s.log.InfoContext(ctx, "playlist deleted",
		slog.String("user_id", userID.String()),
		slog.String("playlist_id", playlistID.String()),
	)
	return nil
}

// AddVideo appends a video to the caller's playlist. Adding a member twice
// is a no-op. The video must be published or owned by the caller.
func (s *Service) AddVideo(ctx context.Context, input MemberInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if _, err := s.owned(ctx, userID, input.PlaylistID); err != nil {
		return err
	}

	v, err := s.videos.GetByID(ctx, input.VideoID)
	if err != nil {
		return fmt.Errorf("get video: %w", err)
	}
	if !v.VisibleTo(userID) {
		return fmt.Errorf("video %s: %w", input.VideoID, domain.ErrNotFound)
	}

	added, err := s.playlists.AddVideo(ctx, input.PlaylistID, input.VideoID)
	if err != nil {
		return fmt.Errorf("add playlist video: %w", err)
	}

	s.log.DebugContext(ctx, "playlist video added",
		slog.String("playlist_id", input.PlaylistID.String()),
		slog.String("video_id", input.VideoID.String()),
		slog.Bool("changed", added),
	)
	return nil
}

// RemoveVideo removes a video from the caller's playlist. Removing a
// non-member is a no-op.
func (s *Service) RemoveVideo(ctx context.Context, input MemberInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if _, err := s.owned(ctx, userID, input.PlaylistID); err != nil {
		return err
	}

	removed, err := s.playlists.RemoveVideo(ctx, input.PlaylistID, input.VideoID)
	if err != nil {
		return fmt.Errorf("remove playlist video: %w", err)
	}

	s.log.DebugContext(ctx, "playlist video removed",
		slog.String("playlist_id", input.PlaylistID.String()),
		slog.String("video_id", input.VideoID.String()),
		slog.Bool("changed", removed),
	)
	return nil
}
