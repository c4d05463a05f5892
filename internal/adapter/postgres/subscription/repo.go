// Package subscription implements the Subscription edge repository using
// PostgreSQL. (subscriber_id, channel_id) is unique.
package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// Repo provides subscription edge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// toggleSQL has the same shape as the like toggle: delete-or-insert in one
// statement, (0, 0) meaning a concurrent insert won.
const toggleSQL = `
WITH del AS (
    DELETE FROM subscriptions
    WHERE subscriber_id = $1 AND channel_id = $2
    RETURNING id
), ins AS (
    INSERT INTO subscriptions (subscriber_id, channel_id)
    SELECT $1, $2
    WHERE NOT EXISTS (SELECT 1 FROM del)
    ON CONFLICT (subscriber_id, channel_id) DO NOTHING
    RETURNING id
)
SELECT (SELECT count(*) FROM del), (SELECT count(*) FROM ins)`

const countByChannelsSQL = `
SELECT channel_id, count(*)
FROM subscriptions
WHERE channel_id = ANY($1::uuid[])
GROUP BY channel_id`

const subscribedChannelsSQL = `
SELECT channel_id
FROM subscriptions
WHERE subscriber_id = $1 AND channel_id = ANY($2::uuid[])`

const (
	countSubscribersSQL = `SELECT count(*) FROM subscriptions WHERE channel_id = $1`
	listSubscribersSQL  = `
SELECT subscriber_id, created_at
FROM subscriptions
WHERE channel_id = $1
ORDER BY seq
LIMIT $2 OFFSET $3`

	countChannelsSQL = `SELECT count(*) FROM subscriptions WHERE subscriber_id = $1`
	listChannelsSQL  = `
SELECT channel_id, created_at
FROM subscriptions
WHERE subscriber_id = $1
ORDER BY seq
LIMIT $2 OFFSET $3`
)

// Toggle deletes the (subscriber, channel) edge if present, otherwise creates it.
func (r *Repo) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (domain.ToggleOutcome, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var deleted, inserted int64
	if err := q.QueryRow(ctx, toggleSQL, subscriberID, channelID).Scan(&deleted, &inserted); err != nil {
		return 0, postgres.MapError(err, "subscription", channelID)
	}
	switch {
	case deleted > 0:
		return domain.ToggleRemoved, nil
	case inserted > 0:
		return domain.ToggleCreated, nil
	default:
		return domain.ToggleConflict, nil
	}
}

// CountByChannels returns the subscriber count per channel. Channels
// without subscribers are absent from the map.
func (r *Repo) CountByChannels(ctx context.Context, channelIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(channelIDs))
	if len(channelIDs) == 0 {
		return counts, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, countByChannelsSQL, channelIDs)
	if err != nil {
		return nil, postgres.MapListError(err, "count subscribers")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id uuid.UUID
			n  int64
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan subscriber count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "count subscribers")
	}
	return counts, nil
}

// SubscribedChannels returns which of channelIDs the subscriber follows.
func (r *Repo) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID, channelIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	subscribed := make(map[uuid.UUID]bool, len(channelIDs))
	if len(channelIDs) == 0 {
		return subscribed, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids, err := postgres.QueryAll(ctx, q, subscribedChannelsSQL, []any{subscriberID, channelIDs}, func(row pgx.Row) (uuid.UUID, error) {
		var id uuid.UUID
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, postgres.MapListError(err, "subscribed channels")
	}
	for _, id := range ids {
		subscribed[id] = true
	}
	return subscribed, nil
}

// ListSubscribers returns one page of a channel's subscribers in
// subscription order, with the total subscriber count.
func (r *Repo) ListSubscribers(ctx context.Context, channelID uuid.UUID, limit, offset int) ([]domain.SubscriberEdge, int64, error) {
	return r.listEdges(ctx, countSubscribersSQL, listSubscribersSQL, channelID, limit, offset)
}

// ListChannels returns one page of the channels a user subscribes to in
// subscription order, with the total count.
func (r *Repo) ListChannels(ctx context.Context, subscriberID uuid.UUID, limit, offset int) ([]domain.SubscriberEdge, int64, error) {
	return r.listEdges(ctx, countChannelsSQL, listChannelsSQL, subscriberID, limit, offset)
}

func (r *Repo) listEdges(ctx context.Context, countSQL, listSQL string, id uuid.UUID, limit, offset int) ([]domain.SubscriberEdge, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int64
	if err := q.QueryRow(ctx, countSQL, id).Scan(&total); err != nil {
		return nil, 0, postgres.MapListError(err, "count subscriptions")
	}
	if total == 0 {
		return []domain.SubscriberEdge{}, 0, nil
	}

	edges, err := postgres.QueryAll(ctx, q, listSQL, []any{id, limit, offset}, func(row pgx.Row) (domain.SubscriberEdge, error) {
		var e domain.SubscriberEdge
		err := row.Scan(&e.UserID, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, 0, postgres.MapListError(err, "list subscriptions")
	}
	return edges, total, nil
}
