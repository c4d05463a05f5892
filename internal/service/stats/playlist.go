package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
)

// PlaylistDetail returns a playlist with its published videos in insertion
// order. Private playlists are visible to their owner only.
func (s *Service) PlaylistDetail(ctx context.Context, playlistID uuid.UUID) (*domain.PlaylistDetail, error) {
	viewer := viewerFromCtx(ctx)

	p, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	if !p.IsPublic && p.OwnerID != viewer.ID {
		return nil, fmt.Errorf("playlist %s: %w", playlistID, domain.ErrNotFound)
	}

	videos, err := s.playlists.PublishedVideos(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("playlist videos: %w", err)
	}

	refs := make([]join.Ref, len(videos))
	for i, v := range videos {
		refs[i] = join.Ref{ID: v.ID, ChannelID: v.OwnerID}
	}
	spec := join.Spec{}.
		WithOwner().
		WithLikeCount(domain.LikeTargetVideo).
		WithViewerLikeFlag(domain.LikeTargetVideo, viewer)
	joined, err := s.joins.Resolve(ctx, spec, refs)
	if err != nil {
		return nil, fmt.Errorf("compose playlist videos: %w", err)
	}

	owner, err := s.joins.Resolve(ctx, join.Spec{}.WithOwner(), []join.Ref{{ID: p.ID, ChannelID: p.OwnerID}})
	if err != nil {
		return nil, fmt.Errorf("playlist owner: %w", err)
	}

	detail := &domain.PlaylistDetail{
		PlaylistView: domain.NewPlaylistView(*p),
		Videos:       make([]domain.VideoView, len(videos)),
	}
	detail.Owner = owner[p.ID].Owner
	for i, v := range videos {
		r := joined[v.ID]
		view := domain.NewVideoView(v)
		view.Owner = r.Owner
		view.LikeCount = r.LikeCount
		view.IsLiked = r.IsLiked
		detail.Videos[i] = view

		detail.TotalVideos++
		detail.TotalViews += v.Views
	}
	return detail, nil
}

// UserPlaylists returns the playlists of userID with their published-member
// totals. Other users' private playlists are left out.
func (s *Service) UserPlaylists(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistView, error) {
	viewer := viewerFromCtx(ctx)

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	playlists, err := s.playlists.ListByOwner(ctx, userID, viewer.ID == userID)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	if len(playlists) == 0 {
		return []domain.PlaylistView{}, nil
	}

	ids := make([]uuid.UUID, len(playlists))
	refs := make([]join.Ref, len(playlists))
	for i, p := range playlists {
		ids[i] = p.ID
		refs[i] = join.Ref{ID: p.ID, ChannelID: p.OwnerID}
	}

	totals, err := s.playlists.TotalsByPlaylists(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("playlist totals: %w", err)
	}
	owners, err := s.joins.Resolve(ctx, join.Spec{}.WithOwner(), refs)
	if err != nil {
		return nil, fmt.Errorf("playlist owners: %w", err)
	}

	views := make([]domain.PlaylistView, len(playlists))
	for i, p := range playlists {
		v := domain.NewPlaylistView(p)
		v.Owner = owners[p.ID].Owner
		v.PlaylistTotals = totals[p.ID]
		views[i] = v
	}
	return views, nil
}
