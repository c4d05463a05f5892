package join

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/metrics"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Owners by channel id
// ---------------------------------------------------------------------------

func newOwnersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.Owner] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Owner] {
		metrics.JoinBatches.WithLabelValues("owner").Inc()
		owners, err := repo.GetPublicByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Owner](len(keys), err)
		}

		grouped := make(map[uuid.UUID]*domain.Owner, len(owners))
		for id, o := range owners {
			grouped[id] = &o
		}
		return mapResults(keys, grouped, nilValue[*domain.Owner])
	}
}

// ---------------------------------------------------------------------------
// Like counts and viewer like flags by target id
// ---------------------------------------------------------------------------

func newLikeCountBatchFn(repo likeRepo, kind domain.LikeTarget) dataloader.BatchFunc[uuid.UUID, int64] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[int64] {
		metrics.JoinBatches.WithLabelValues("like_count").Inc()
		counts, err := repo.CountByTargets(ctx, kind, keys)
		if err != nil {
			return errorResults[int64](len(keys), err)
		}
		return mapResults(keys, counts, nilValue[int64])
	}
}

func newLikedBatchFn(repo likeRepo, viewerID uuid.UUID, kind domain.LikeTarget) dataloader.BatchFunc[uuid.UUID, bool] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[bool] {
		metrics.JoinBatches.WithLabelValues("viewer_like").Inc()
		liked, err := repo.LikedTargets(ctx, viewerID, kind, keys)
		if err != nil {
			return errorResults[bool](len(keys), err)
		}
		return mapResults(keys, liked, nilValue[bool])
	}
}

// ---------------------------------------------------------------------------
// Subscriber counts and viewer subscription flags by channel id
// ---------------------------------------------------------------------------

func newSubscriberCountBatchFn(repo subscriptionRepo) dataloader.BatchFunc[uuid.UUID, int64] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[int64] {
		metrics.JoinBatches.WithLabelValues("subscriber_count").Inc()
		counts, err := repo.CountByChannels(ctx, keys)
		if err != nil {
			return errorResults[int64](len(keys), err)
		}
		return mapResults(keys, counts, nilValue[int64])
	}
}

func newSubscribedBatchFn(repo subscriptionRepo, viewerID uuid.UUID) dataloader.BatchFunc[uuid.UUID, bool] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[bool] {
		metrics.JoinBatches.WithLabelValues("viewer_subscription").Inc()
		subscribed, err := repo.SubscribedChannels(ctx, viewerID, keys)
		if err != nil {
			return errorResults[bool](len(keys), err)
		}
		return mapResults(keys, subscribed, nilValue[bool])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// nilValue returns the zero value of T: a nil owner, a zero count, false.
func nilValue[T any]() T {
	var zero T
	return zero
}

// loadAll loads every key through l and returns the values keyed by id.
func loadAll[V any](ctx context.Context, l *dataloader.Loader[uuid.UUID, V], keys []uuid.UUID) (map[uuid.UUID]V, error) {
	values, errs := l.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	out := make(map[uuid.UUID]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}
