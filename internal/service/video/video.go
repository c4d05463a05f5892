package video

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

// Publish uploads the thumbnail and the video file, then creates the video
// row. Uploads that are not referenced by a row when Publish fails are removed.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*domain.Video, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	thumbBlob := input.Thumbnail
	thumbBlob.Kind = domain.MediaKindImage
	thumb, err := s.store(ctx, thumbBlob)
	if err != nil {
		return nil, fmt.Errorf("store thumbnail: %w", err)
	}

	videoBlob := input.Video
	videoBlob.Kind = domain.MediaKindVideo
	file, err := s.store(ctx, videoBlob)
	if err != nil {
		s.discard(ctx, thumb.URL)
		return nil, fmt.Errorf("store video file: %w", err)
	}

	var duration float64
	if file.Duration != nil {
		duration = *file.Duration
	}

	video, err := s.videos.Create(ctx, &domain.Video{
		OwnerID:      userID,
		VideoURL:     file.URL,
		ThumbnailURL: thumb.URL,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Duration:     duration,
		IsPublished:  true,
	})
	if err != nil {
		s.discard(ctx, thumb.URL, file.URL)
		return nil, fmt.Errorf("create video: %w", err)
	}

	s.log.InfoContext(ctx, "video published",
		slog.String("user_id", userID.String()),
		slog.String("video_id", video.ID.String()),
	)

	return video, nil
}

// Update edits the title, description or thumbnail of an owned video. A
// replaced thumbnail is removed once the row points at the new one.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Video, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.owned(ctx, userID, input.VideoID)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}

	params := domain.VideoUpdateParams{Description: input.Description}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}

	var newThumb string
	if input.Thumbnail != nil {
		blob := *input.Thumbnail
		blob.Kind = domain.MediaKindImage
		stored, err := s.store(ctx, blob)
		if err != nil {
			return nil, fmt.Errorf("store thumbnail: %w", err)
		}
		newThumb = stored.URL
		params.ThumbnailURL = &newThumb
	}

	updated, err := s.videos.Update(ctx, input.VideoID, params)
	if err != nil {
		s.discard(ctx, newThumb)
		return nil, fmt.Errorf("update video: %w", err)
	}

	if newThumb != "" && current.ThumbnailURL != newThumb {
		s.discard(ctx, current.ThumbnailURL)
	}

	return updated, nil
}

// Delete removes an owned video with its comments, like edges, playlist
// memberships and watch history in one transaction, then removes its media.
func (s *Service) Delete(ctx context.Context, videoID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	video, err := s.owned(ctx, userID, videoID)
	if err != nil {
		return fmt.Errorf("get video: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		commentIDs, err := s.comments.IDsByVideo(txCtx, videoID)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		if len(commentIDs) > 0 {
			if _, err := s.likes.DeleteByTargets(txCtx, domain.LikeTargetComment, commentIDs); err != nil {
				return fmt.Errorf("delete comment likes: %w", err)
			}
		}
		if _, err := s.likes.DeleteByTargets(txCtx, domain.LikeTargetVideo, []uuid.UUID{videoID}); err != nil {
			return fmt.Errorf("delete video likes: %w", err)
		}
		if err := s.videos.Delete(txCtx, videoID); err != nil {
			return fmt.Errorf("delete video: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.discard(ctx, video.VideoURL, video.ThumbnailURL)

	s.log.InfoContext(ctx, "video deleted",
		slog.String("user_id", userID.String()),
		slog.String("video_id", videoID.String()),
	)

	return nil
}

// TogglePublish flips the published flag of an owned video.
func (s *Service) TogglePublish(ctx context.Context, videoID uuid.UUID) (*domain.Video, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if videoID == uuid.Nil {
		return nil, domain.NewValidationError("videoId", "required")
	}

	if _, err := s.owned(ctx, userID, videoID); err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}

	video, err := s.videos.TogglePublished(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("toggle published: %w", err)
	}
	return video, nil
}
