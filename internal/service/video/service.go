package video

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type videoRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	Create(ctx context.Context, v *domain.Video) (*domain.Video, error)
	Update(ctx context.Context, id uuid.UUID, params domain.VideoUpdateParams) (*domain.Video, error)
	TogglePublished(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepo interface {
	IDsByVideo(ctx context.Context, videoID uuid.UUID) ([]uuid.UUID, error)
}

type likeRepo interface {
	DeleteByTargets(ctx context.Context, kind domain.LikeTarget, targetIDs []uuid.UUID) (int64, error)
}

type mediaStore interface {
	Store(ctx context.Context, blob domain.MediaBlob) (domain.StoredMedia, error)
	Remove(ctx context.Context, url string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements video publishing and owner edits.
type Service struct {
	log          *slog.Logger
	videos       videoRepo
	comments     commentRepo
	likes        likeRepo
	media        mediaStore
	tx           txManager
	retryBackoff time.Duration
}

// NewService creates a new Video service. retryBackoff is the pause before
// the single retry of a failed media upload.
func NewService(
	logger *slog.Logger,
	videos videoRepo,
	comments commentRepo,
	likes likeRepo,
	media mediaStore,
	tx txManager,
	retryBackoff time.Duration,
) *Service {
	return &Service{
		log:          logger.With("service", "video"),
		videos:       videos,
		comments:     comments,
		likes:        likes,
		media:        media,
		tx:           tx,
		retryBackoff: retryBackoff,
	}
}

// ---------------------------------------------------------------------------
// Helpers (private)
// ---------------------------------------------------------------------------

// owned loads the video and verifies the user uploaded it.
func (s *Service) owned(ctx context.Context, userID, videoID uuid.UUID) (*domain.Video, error) {
	v, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != userID {
		return nil, fmt.Errorf("video %s: %w", videoID, domain.ErrForbidden)
	}
	return v, nil
}

// store uploads blob, retrying once when the media store is unavailable.
func (s *Service) store(ctx context.Context, blob domain.MediaBlob) (domain.StoredMedia, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryBackoff), 1),
		ctx,
	)
	return backoff.RetryWithData(func() (domain.StoredMedia, error) {
		stored, err := s.media.Store(ctx, blob)
		if err != nil && !errors.Is(err, domain.ErrUnavailable) {
			return stored, backoff.Permanent(err)
		}
		return stored, err
	}, policy)
}

// discard removes media that no row references any more. Failures are logged;
// the orphaned object is left for the storage lifecycle rules.
func (s *Service) discard(ctx context.Context, urls ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := s.media.Remove(ctx, u); err != nil {
			s.log.WarnContext(ctx, "remove media",
				slog.String("url", u),
				slog.String("error", err.Error()),
			)
		}
	}
}
