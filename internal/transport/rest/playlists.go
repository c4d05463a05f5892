package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/playlist"
)

type playlistService interface {
	Create(ctx context.Context, input playlist.CreateInput) (*domain.Playlist, error)
	Update(ctx context.Context, input playlist.UpdateInput) (*domain.Playlist, error)
	Delete(ctx context.Context, playlistID uuid.UUID) error
	AddVideo(ctx context.Context, input playlist.MemberInput) error
	RemoveVideo(ctx context.Context, input playlist.MemberInput) error
}

type statsService interface {
	ChannelStats(ctx context.Context, channelID uuid.UUID) (domain.ChannelStats, error)
	PlaylistDetail(ctx context.Context, playlistID uuid.UUID) (*domain.PlaylistDetail, error)
	UserPlaylists(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistView, error)
}

// PlaylistHandler serves playlists and the channel dashboard statistics.
type PlaylistHandler struct {
	playlists playlistService
	stats     statsService
	log       *slog.Logger
}

// NewPlaylistHandler creates a PlaylistHandler.
func NewPlaylistHandler(playlists playlistService, stats statsService, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists, stats: stats, log: logger.With("handler", "playlist")}
}

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic"`
}

type updatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

// Create handles POST /playlists.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.playlists.Create(r.Context(), playlist.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Detail handles GET /playlists/{playlistID}.
func (h *PlaylistHandler) Detail(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuidParam(r, "playlistID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	detail, err := h.stats.PlaylistDetail(r.Context(), playlistID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Update handles PATCH /playlists/{playlistID}.
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuidParam(r, "playlistID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updatePlaylistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.playlists.Update(r.Context(), playlist.UpdateInput{
		PlaylistID:  playlistID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /playlists/{playlistID}.
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuidParam(r, "playlistID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.playlists.Delete(r.Context(), playlistID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddVideo handles PUT /playlists/{playlistID}/videos/{videoID}.
func (h *PlaylistHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	input, err := memberInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.playlists.AddVideo(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveVideo handles DELETE /playlists/{playlistID}/videos/{videoID}.
func (h *PlaylistHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	input, err := memberInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.playlists.RemoveVideo(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UserPlaylists handles GET /users/{userID}/playlists.
func (h *PlaylistHandler) UserPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lists, err := h.stats.UserPlaylists(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// ChannelStats handles GET /dashboard/stats for the viewer's own channel.
func (h *PlaylistHandler) ChannelStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.ChannelStats(r.Context(), uuid.Nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func memberInput(r *http.Request) (playlist.MemberInput, error) {
	playlistID, err := uuidParam(r, "playlistID")
	if err != nil {
		return playlist.MemberInput{}, err
	}
	videoID, err := uuidParam(r, "videoID")
	if err != nil {
		return playlist.MemberInput{}, err
	}
	return playlist.MemberInput{PlaylistID: playlistID, VideoID: videoID}, nil
}
