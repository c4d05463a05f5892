// Package media stores uploaded videos and thumbnails in S3-compatible
// object storage and probes video durations with ffprobe.
package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/vidstream-backend/internal/config"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/metrics"
)

// objectStore is the subset of *minio.Client the store uses.
type objectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	FPutObject(ctx context.Context, bucket, object, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error
}

// prober returns the duration of a local video file in seconds.
type prober func(path string) (float64, error)

// Store persists media blobs and hands back their public URLs.
type Store struct {
	log     *slog.Logger
	cfg     config.MediaConfig
	objects objectStore
	probe   prober
	breaker *gobreaker.CircuitBreaker[struct{}]
	baseURL string
}

// New connects a minio client to cfg.Endpoint. It does not contact the
// server; call EnsureBuckets at startup.
func New(log *slog.Logger, cfg config.MediaConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("media: new client: %w", err)
	}
	return newStore(log, cfg, client, probeDuration), nil
}

func newStore(log *slog.Logger, cfg config.MediaConfig, objects objectStore, probe prober) *Store {
	logger := log.With("adapter", "media")
	s := &Store{
		log:     logger,
		cfg:     cfg,
		objects: objects,
		probe:   probe,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}

	threshold := cfg.BreakerFailureThreshold
	s.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "media",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// A cancelled request says nothing about the store's health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.MediaBreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	metrics.MediaBreakerState.WithLabelValues("media").Set(float64(gobreaker.StateClosed))

	return s
}

// EnsureBuckets creates the video and image buckets when missing.
func (s *Store) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range []string{s.cfg.VideoBucket, s.cfg.ImageBucket} {
		exists, err := s.objects.BucketExists(ctx, bucket)
		if err != nil {
			return domain.NewUnavailableError("media", fmt.Errorf("bucket %s: %w", bucket, err))
		}
		if exists {
			continue
		}
		if err := s.objects.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
			return domain.NewUnavailableError("media", fmt.Errorf("make bucket %s: %w", bucket, err))
		}
		s.log.InfoContext(ctx, "bucket created", slog.String("bucket", bucket))
	}
	return nil
}

// Ready reports whether the object store answers.
func (s *Store) Ready(ctx context.Context) error {
	return s.guard(ctx, "ping", func() error {
		_, err := s.objects.BucketExists(ctx, s.cfg.VideoBucket)
		return err
	})
}

// Store uploads blob and returns its public URL. Videos are probed for their
// duration before upload; an unreadable video is a validation error.
func (s *Store) Store(ctx context.Context, blob domain.MediaBlob) (domain.StoredMedia, error) {
	bucket, err := s.bucketFor(blob.Kind)
	if err != nil {
		return domain.StoredMedia{}, err
	}

	var stored domain.StoredMedia
	if blob.Kind == domain.MediaKindVideo {
		d, err := s.probe(blob.LocalPath)
		if err != nil {
			s.log.WarnContext(ctx, "probe video", slog.String("file", blob.Filename), slog.String("error", err.Error()))
			return domain.StoredMedia{}, domain.NewValidationError("videoFile", "unreadable video file")
		}
		stored.Duration = &d
	}

	object := uuid.NewString() + strings.ToLower(filepath.Ext(blob.Filename))
	err = s.guard(ctx, "put", func() error {
		_, err := s.objects.FPutObject(ctx, bucket, object, blob.LocalPath, minio.PutObjectOptions{
			ContentType: blob.ContentType,
		})
		return err
	})
	if err != nil {
		return domain.StoredMedia{}, err
	}

	stored.URL = s.baseURL + "/" + bucket + "/" + object
	return stored, nil
}

// Remove deletes the object behind rawURL. URLs that do not point into one of
// the store's buckets are ignored.
func (s *Store) Remove(ctx context.Context, rawURL string) error {
	bucket, object, ok := s.locate(rawURL)
	if !ok {
		s.log.WarnContext(ctx, "remove foreign media url", slog.String("url", rawURL))
		return nil
	}
	return s.guard(ctx, "remove", func() error {
		return s.objects.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{})
	})
}

func (s *Store) bucketFor(kind domain.MediaKind) (string, error) {
	switch kind {
	case domain.MediaKindVideo:
		return s.cfg.VideoBucket, nil
	case domain.MediaKindImage:
		return s.cfg.ImageBucket, nil
	default:
		return "", fmt.Errorf("media: unknown kind %q", kind)
	}
}

func (s *Store) locate(rawURL string) (bucket, object string, ok bool) {
	rest, found := strings.CutPrefix(rawURL, s.baseURL+"/")
	if !found {
		return "", "", false
	}
	rest, err := url.PathUnescape(rest)
	if err != nil {
		return "", "", false
	}
	bucket, object, found = strings.Cut(rest, "/")
	if !found || object == "" {
		return "", "", false
	}
	if bucket != s.cfg.VideoBucket && bucket != s.cfg.ImageBucket {
		return "", "", false
	}
	return bucket, object, true
}

// guard runs op through the circuit breaker and maps failures to
// domain.ErrUnavailable.
func (s *Store) guard(ctx context.Context, operation string, op func() error) error {
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, op()
	})
	if err == nil {
		metrics.MediaOperations.WithLabelValues(operation, "ok").Inc()
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	result := "error"
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "rejected"
	}
	metrics.MediaOperations.WithLabelValues(operation, result).Inc()
	s.log.ErrorContext(ctx, "media operation failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	return domain.NewUnavailableError("media", err)
}
