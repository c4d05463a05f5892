package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/metrics"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

// Toggle removes the authenticated actor's edge to the target if it exists,
// otherwise creates it. A concurrent toggle that already created the edge is
// reported as present.
func (s *Service) Toggle(ctx context.Context, input ToggleInput) (ToggleResult, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ToggleResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ToggleResult{}, err
	}

	if input.Kind == domain.EdgeKindChannel && input.TargetID == actorID {
		return ToggleResult{}, domain.NewValidationError("targetId", "cannot subscribe to own channel")
	}

	if err := s.ensureTarget(ctx, actorID, input); err != nil {
		return ToggleResult{}, err
	}

	var (
		outcome domain.ToggleOutcome
		err     error
	)
	if target, isLike := input.Kind.LikeTarget(); isLike {
		outcome, err = s.likes.Toggle(ctx, actorID, target, input.TargetID)
	} else {
		outcome, err = s.subscriptions.Toggle(ctx, actorID, input.TargetID)
	}
	if err != nil {
		metrics.EngagementToggles.WithLabelValues(input.Kind.String(), "error").Inc()
		return ToggleResult{}, fmt.Errorf("toggle %s edge: %w", input.Kind, err)
	}

	metrics.EngagementToggles.WithLabelValues(input.Kind.String(), outcome.String()).Inc()
	s.log.InfoContext(ctx, "edge toggled",
		slog.String("actor_id", actorID.String()),
		slog.String("kind", input.Kind.String()),
		slog.String("target_id", input.TargetID.String()),
		slog.String("outcome", outcome.String()),
	)

	return ToggleResult{Kind: input.Kind, TargetID: input.TargetID, Present: outcome.Present()}, nil
}

// ToggleVideoLike toggles the actor's like on a video.
func (s *Service) ToggleVideoLike(ctx context.Context, videoID uuid.UUID) (ToggleResult, error) {
	return s.Toggle(ctx, ToggleInput{Kind: domain.EdgeKindVideo, TargetID: videoID})
}

// ToggleCommentLike toggles the actor's like on a comment.
func (s *Service) ToggleCommentLike(ctx context.Context, commentID uuid.UUID) (ToggleResult, error) {
	return s.Toggle(ctx, ToggleInput{Kind: domain.EdgeKindComment, TargetID: commentID})
}

// ToggleTweetLike toggles the actor's like on a tweet.
func (s *Service) ToggleTweetLike(ctx context.Context, tweetID uuid.UUID) (ToggleResult, error) {
	return s.Toggle(ctx, ToggleInput{Kind: domain.EdgeKindTweet, TargetID: tweetID})
}

// ToggleSubscription toggles the actor's subscription to a channel.
func (s *Service) ToggleSubscription(ctx context.Context, channelID uuid.UUID) (ToggleResult, error) {
	return s.Toggle(ctx, ToggleInput{Kind: domain.EdgeKindChannel, TargetID: channelID})
}

// ensureTarget returns domain.ErrNotFound when the target does not exist or
// is a video the actor may not see.
func (s *Service) ensureTarget(ctx context.Context, actorID uuid.UUID, input ToggleInput) error {
	var err error
	switch input.Kind {
	case domain.EdgeKindVideo:
		var v *domain.Video
		v, err = s.videos.GetByID(ctx, input.TargetID)
		if err == nil && !v.VisibleTo(actorID) {
			err = fmt.Errorf("video %s: %w", input.TargetID, domain.ErrNotFound)
		}
	case domain.EdgeKindComment:
		_, err = s.comments.GetByID(ctx, input.TargetID)
	case domain.EdgeKindTweet:
		_, err = s.tweets.GetByID(ctx, input.TargetID)
	case domain.EdgeKindChannel:
		var exists bool
		exists, err = s.users.Exists(ctx, input.TargetID)
		if err == nil && !exists {
			err = fmt.Errorf("channel %s: %w", input.TargetID, domain.ErrNotFound)
		}
	}
	if err != nil {
		return fmt.Errorf("lookup %s: %w", input.Kind, err)
	}
	return nil
}
