// Package engagement flips like and subscription edges. A toggle is not
// idempotent: a blind client retry flips the edge back.
package engagement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

type videoRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
}

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
}

type tweetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type likeRepo interface {
	Toggle(ctx context.Context, actorID uuid.UUID, kind domain.LikeTarget, targetID uuid.UUID) (domain.ToggleOutcome, error)
}

type subscriptionRepo interface {
	Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (domain.ToggleOutcome, error)
}

// Service provides engagement edge toggles.
type Service struct {
	videos        videoRepo
	comments      commentRepo
	tweets        tweetRepo
	users         userRepo
	likes         likeRepo
	subscriptions subscriptionRepo
	log           *slog.Logger
}

// NewService creates a new engagement service.
func NewService(
	log *slog.Logger,
	videos videoRepo,
	comments commentRepo,
	tweets tweetRepo,
	users userRepo,
	likes likeRepo,
	subscriptions subscriptionRepo,
) *Service {
	return &Service{
		videos:        videos,
		comments:      comments,
		tweets:        tweets,
		users:         users,
		likes:         likes,
		subscriptions: subscriptions,
		log:           log.With("service", "engagement"),
	}
}
