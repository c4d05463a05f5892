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
// Comment Operations
// ---------------------------------------------------------------------------

// AddComment adds a comment to a video. The video must be published or owned
// by the commenter.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	video, err := s.videos.GetByID(ctx, input.VideoID)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	if !video.VisibleTo(userID) {
		return nil, fmt.Errorf("video %s: %w", input.VideoID, domain.ErrNotFound)
	}

	comment, err := s.comments.Create(ctx, &domain.Comment{
		ID:      uuid.New(),
		VideoID: input.VideoID,
		OwnerID: userID,
		Content: strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", userID.String()),
		slog.String("video_id", input.VideoID.String()),
		slog.String("comment_id", comment.ID.String()),
	)

	return comment, nil
}

// UpdateComment replaces the content of the caller's comment.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedComment(ctx, userID, input.CommentID); err != nil {
		return nil, err
	}

	comment, err := s.comments.Update(ctx, input.CommentID, strings.TrimSpace(input.Content))
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.log.DebugContext(ctx, "comment updated",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", input.CommentID.String()),
	)

	return comment, nil
}

// DeleteComment deletes the caller's comment together with its likes.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if commentID == uuid.Nil {
		return domain.NewValidationError("commentId", "required")
	}

	var removedLikes int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedComment(txCtx, userID, commentID); err != nil {
			return err
		}

		n, err := s.likes.DeleteByTargets(txCtx, domain.LikeTargetComment, []uuid.UUID{commentID})
		if err != nil {
			return fmt.Errorf("delete comment likes: %w", err)
		}
		removedLikes = n

		if err := s.comments.Delete(txCtx, commentID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", commentID.String()),
		slog.Int64("likes_removed", removedLikes),
	)

	return nil
}
