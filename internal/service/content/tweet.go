package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Tweet Operations
// ---------------------------------------------------------------------------

// CreateTweet posts a tweet on the caller's channel.
func (s *Service) CreateTweet(ctx context.Context, input CreateTweetInput) (*domain.Tweet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tweet, err := s.tweets.Create(ctx, &domain.Tweet{
		ID:      uuid.New(),
		OwnerID: userID,
		Content: strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}

	s.log.InfoContext(ctx, "tweet created",
		slog.String("user_id", userID.String()),
		slog.String("tweet_id", tweet.ID.String()),
	)

	return tweet, nil
}

// UpdateTweet replaces the content of the caller's tweet.
func (s *Service) UpdateTweet(ctx context.Context, input UpdateTweetInput) (*domain.Tweet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedTweet(ctx, userID, input.TweetID); err != nil {
		return nil, err
	}

	tweet, err := s.tweets.Update(ctx, input.TweetID, strings.TrimSpace(input.Content))
	if err != nil {
		return nil, fmt.Errorf("update tweet: %w", err)
	}

	s.log.DebugContext(ctx, "tweet updated",
		slog.String("user_id", userID.String()),
		slog.String("tweet_id", input.TweetID.String()),
	)

	return tweet, nil
}

// DeleteTweet deletes the caller's tweet together with its likes.
func (s *Service) DeleteTweet(ctx context.Context, tweetID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if tweetID == uuid.Nil {
		return domain.NewValidationError("tweetId", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedTweet(txCtx, userID, tweetID); err != nil {
			return err
		}
		if _, err := s.likes.DeleteByTargets(txCtx, domain.LikeTargetTweet, []uuid.UUID{tweetID}); err != nil {
			return fmt.Errorf("delete tweet likes: %w", err)
		}
		if err := s.tweets.Delete(txCtx, tweetID); err != nil {
			return fmt.Errorf("delete tweet: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tweet deleted",
		slog.String("user_id", userID.String()),
		slog.String("tweet_id", tweetID.String()),
	)

	return nil
}
