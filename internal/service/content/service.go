package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	MaxCommentLength = 5000
	MaxTweetLength   = 1000
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type videoRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
}

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tweetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error)
	Create(ctx context.Context, tw *domain.Tweet) (*domain.Tweet, error)
	Update(ctx context.Context, id uuid.UUID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type likeRepo interface {
	DeleteByTargets(ctx context.Context, kind domain.LikeTarget, targetIDs []uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements comment and tweet authoring.
type Service struct {
	log      *slog.Logger
	videos   videoRepo
	comments commentRepo
	tweets   tweetRepo
	likes    likeRepo
	tx       txManager
}

// NewService creates a new Content service.
func NewService(
	logger *slog.Logger,
	videos videoRepo,
	comments commentRepo,
	tweets tweetRepo,
	likes likeRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "content"),
		videos:   videos,
		comments: comments,
		tweets:   tweets,
		likes:    likes,
		tx:       tx,
	}
}

// ---------------------------------------------------------------------------
// Ownership helpers (private)
// ---------------------------------------------------------------------------

// ownedComment loads the comment and verifies the user wrote it.
func (s *Service) ownedComment(ctx context.Context, userID, commentID uuid.UUID) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrForbidden)
	}
	return c, nil
}

// ownedTweet loads the tweet and verifies the user posted it.
func (s *Service) ownedTweet(ctx context.Context, userID, tweetID uuid.UUID) (*domain.Tweet, error) {
	tw, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tw.OwnerID != userID {
		return nil, fmt.Errorf("tweet %s: %w", tweetID, domain.ErrForbidden)
	}
	return tw, nil
}
