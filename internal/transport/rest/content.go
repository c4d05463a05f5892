package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/content"
	"github.com/heartmarshall/vidstream-backend/internal/service/feed"
)

type contentFeed interface {
	ListComments(ctx context.Context, videoID uuid.UUID, q domain.ListQuery) (domain.Page[domain.CommentView], error)
	ListTweets(ctx context.Context, scope feed.TweetScope, q domain.ListQuery) (domain.Page[domain.TweetView], error)
}

type contentService interface {
	AddComment(ctx context.Context, input content.AddCommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, input content.UpdateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
	CreateTweet(ctx context.Context, input content.CreateTweetInput) (*domain.Tweet, error)
	UpdateTweet(ctx context.Context, input content.UpdateTweetInput) (*domain.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID uuid.UUID) error
}

// ContentHandler serves comments and tweets.
type ContentHandler struct {
	feed    contentFeed
	content contentService
	log     *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(f contentFeed, svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{feed: f, content: svc, log: logger.With("handler", "content")}
}

type contentRequest struct {
	Content string `json:"content"`
}

// ListComments handles GET /videos/{videoID}/comments.
func (h *ContentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuidParam(r, "videoID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	q, err := listQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.feed.ListComments(r.Context(), videoID, q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// AddComment handles POST /videos/{videoID}/comments.
func (h *ContentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuidParam(r, "videoID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comment, err := h.content.AddComment(r.Context(), content.AddCommentInput{VideoID: videoID, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// UpdateComment handles PATCH /comments/{commentID}.
func (h *ContentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comment, err := h.content.UpdateComment(r.Context(), content.UpdateCommentInput{CommentID: commentID, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

// DeleteComment handles DELETE /comments/{commentID}.
func (h *ContentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.content.DeleteComment(r.Context(), commentID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTweets handles GET /tweets.
func (h *ContentHandler) ListTweets(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ownerID, err := optionalUUIDQuery(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.feed.ListTweets(r.Context(), feed.TweetScope{OwnerID: ownerID}, q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// CreateTweet handles POST /tweets.
func (h *ContentHandler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tweet, err := h.content.CreateTweet(r.Context(), content.CreateTweetInput{Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tweet)
}

// UpdateTweet handles PATCH /tweets/{tweetID}.
func (h *ContentHandler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := uuidParam(r, "tweetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tweet, err := h.content.UpdateTweet(r.Context(), content.UpdateTweetInput{TweetID: tweetID, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tweet)
}

// DeleteTweet handles DELETE /tweets/{tweetID}.
func (h *ContentHandler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := uuidParam(r, "tweetID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.content.DeleteTweet(r.Context(), tweetID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
