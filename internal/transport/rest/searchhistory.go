package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

type searchHistoryService interface {
	Record(ctx context.Context, query string) (*domain.SearchHistoryEntry, error)
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.SearchHistoryEntry], error)
	Delete(ctx context.Context, entryID uuid.UUID) error
	Clear(ctx context.Context) (int64, error)
}

// SearchHistoryHandler serves the viewer's search history.
type SearchHistoryHandler struct {
	svc searchHistoryService
	log *slog.Logger
}

// NewSearchHistoryHandler creates a SearchHistoryHandler.
func NewSearchHistoryHandler(svc searchHistoryService, logger *slog.Logger) *SearchHistoryHandler {
	return &SearchHistoryHandler{svc: svc, log: logger.With("handler", "search_history")}
}

type recordSearchRequest struct {
	Query string `json:"query"`
}

type clearResponse struct {
	Deleted int64 `json:"deleted"`
}

// List handles GET /search-history.
func (h *SearchHistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Record handles POST /search-history.
func (h *SearchHistoryHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordSearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Record(r.Context(), req.Query)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Delete handles DELETE /search-history/{entryID}.
func (h *SearchHistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), entryID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /search-history.
func (h *SearchHistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Clear(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clearResponse{Deleted: n})
}
