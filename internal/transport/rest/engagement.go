package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/engagement"
)

type engagementService interface {
	Toggle(ctx context.Context, input engagement.ToggleInput) (engagement.ToggleResult, error)
}

type likedFeed interface {
	ListLikedVideos(ctx context.Context, q domain.ListQuery) (domain.Page[domain.VideoView], error)
}

type subscriberGraph interface {
	ListSubscribers(ctx context.Context, channelID uuid.UUID, page domain.PageRequest) (domain.Page[domain.SubscriberView], error)
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, page domain.PageRequest) (domain.Page[domain.ChannelView], error)
}

// EngagementHandler serves likes and subscriptions.
type EngagementHandler struct {
	engagement engagementService
	liked      likedFeed
	graph      subscriberGraph
	log        *slog.Logger
}

// NewEngagementHandler creates an EngagementHandler.
func NewEngagementHandler(svc engagementService, liked likedFeed, graph subscriberGraph, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{engagement: svc, liked: liked, graph: graph, log: logger.With("handler", "engagement")}
}

// ToggleLike handles POST /likes/{kind}/{targetID}.
func (h *EngagementHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	kind := domain.EdgeKind(chi.URLParam(r, "kind"))
	if _, ok := kind.LikeTarget(); !ok {
		handleError(h.log, w, r, domain.NewValidationError("kind", "must be video, comment or tweet"))
		return
	}
	targetID, err := uuidParam(r, "targetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.engagement.Toggle(r.Context(), engagement.ToggleInput{Kind: kind, TargetID: targetID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ToggleSubscription handles POST /subscriptions/{channelID}.
func (h *EngagementHandler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	channelID, err := uuidParam(r, "channelID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.engagement.Toggle(r.Context(), engagement.ToggleInput{Kind: domain.EdgeKindChannel, TargetID: channelID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// LikedVideos handles GET /likes/videos.
func (h *EngagementHandler) LikedVideos(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.liked.ListLikedVideos(r.Context(), q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Subscribers handles GET /subscriptions/{channelID}/subscribers.
func (h *EngagementHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := uuidParam(r, "channelID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := pageRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.graph.ListSubscribers(r.Context(), channelID, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// SubscribedChannels handles GET /users/{userID}/subscriptions.
func (h *EngagementHandler) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req, err := pageRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.graph.ListSubscribedChannels(r.Context(), userID, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
