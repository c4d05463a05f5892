package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/feed"
	"github.com/heartmarshall/vidstream-backend/internal/service/video"
)

type videoFeed interface {
	ListVideos(ctx context.Context, scope feed.VideoScope, q domain.ListQuery) (domain.Page[domain.VideoView], error)
	GetVideo(ctx context.Context, videoID uuid.UUID) (*domain.VideoDetail, error)
	ListWatchHistory(ctx context.Context, page domain.PageRequest) (domain.Page[domain.VideoView], error)
}

type videoService interface {
	Publish(ctx context.Context, input video.PublishInput) (*domain.Video, error)
	Update(ctx context.Context, input video.UpdateInput) (*domain.Video, error)
	Delete(ctx context.Context, videoID uuid.UUID) error
	TogglePublish(ctx context.Context, videoID uuid.UUID) (*domain.Video, error)
}

// VideoHandler serves video listings, uploads and owner edits.
type VideoHandler struct {
	feed      videoFeed
	videos    videoService
	log       *slog.Logger
	maxUpload int64
	tempDir   string
}

// NewVideoHandler creates a VideoHandler. Uploads larger than maxUpload bytes
// are rejected; files are staged under tempDir (os.TempDir when empty).
func NewVideoHandler(f videoFeed, videos videoService, logger *slog.Logger, maxUpload int64, tempDir string) *VideoHandler {
	return &VideoHandler{
		feed:      f,
		videos:    videos,
		log:       logger.With("handler", "video"),
		maxUpload: maxUpload,
		tempDir:   tempDir,
	}
}

// List handles GET /videos.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	channelID, err := optionalUUIDQuery(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.feed.ListVideos(r.Context(), feed.VideoScope{Kind: feed.ScopePublic, ChannelID: channelID}, q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Dashboard handles GET /dashboard/videos: the viewer's own videos,
// unpublished included.
func (h *VideoHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.feed.ListVideos(r.Context(), feed.VideoScope{Kind: feed.ScopeOwner}, q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// History handles GET /history.
func (h *VideoHandler) History(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.feed.ListWatchHistory(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Get handles GET /videos/{videoID}.
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuidParam(r, "videoID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	detail, err := h.feed.GetVideo(r.Context(), videoID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Publish handles POST /videos (multipart: videoFile, thumbnail, title,
// description).
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxUpload); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	up := &upload{tempDir: h.tempDir}
	defer up.cleanup(r)

	input := video.PublishInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	videoFile, err := up.stage(r, "videoFile")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if videoFile != nil {
		input.Video = *videoFile
	}
	thumbnail, err := up.stage(r, "thumbnail")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if thumbnail != nil {
		input.Thumbnail = *thumbnail
	}

	created, err := h.videos.Publish(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /videos/{videoID} (multipart: title, description,
// thumbnail; all optional).
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuidParam(r, "videoID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := parseMultipart(w, r, h.maxUpload); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	up := &upload{tempDir: h.tempDir}
	defer up.cleanup(r)

	input := video.UpdateInput{VideoID: videoID}
	if title, ok := formValue(r, "title"); ok {
		input.Title = &title
	}
	if description, ok := formValue(r, "description"); ok {
		input.Description = &description
	}
	if input.Thumbnail, err = up.stage(r, "thumbnail"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.videos.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /videos/{videoID}.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuidParam(r, "videoID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.videos.Delete(r.Context(), videoID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TogglePublish handles PATCH /videos/{videoID}/publish.
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuidParam(r, "videoID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.videos.TogglePublish(r.Context(), videoID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
