// Package join attaches related data to a page of primary rows: owners,
// like counts, subscriber counts and viewer-relative flags. Each join kind
// is one batched query scoped to the rows of the call, and all kinds run
// concurrently. A failure in any join fails the whole call.
package join

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetPublicByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Owner, error)
}

type likeRepo interface {
	CountByTargets(ctx context.Context, kind domain.LikeTarget, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	LikedTargets(ctx context.Context, actorID uuid.UUID, kind domain.LikeTarget, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type subscriptionRepo interface {
	CountByChannels(ctx context.Context, channelIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	SubscribedChannels(ctx context.Context, subscriberID uuid.UUID, channelIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// ---------------------------------------------------------------------------
// Request / result types
// ---------------------------------------------------------------------------

// Ref identifies one primary row. ID keys the like joins, ChannelID keys the
// owner and subscriber joins. For channel rows both are the channel's id.
type Ref struct {
	ID        uuid.UUID
	ChannelID uuid.UUID
}

// Spec selects the joins to run. Build it with the With* methods.
type Spec struct {
	Owner           bool
	LikeCount       bool
	SubscriberCount bool

	// Target is the like target kind of the primary rows.
	Target domain.LikeTarget

	// LikedBy and SubscribedBy are the viewers for the flag joins. An
	// anonymous viewer disables the flag.
	LikedBy      domain.Viewer
	SubscribedBy domain.Viewer
}

// WithOwner joins the public projection of the channel owner.
func (s Spec) WithOwner() Spec {
	s.Owner = true
	return s
}

// WithLikeCount joins the number of likes of kind on each row.
func (s Spec) WithLikeCount(kind domain.LikeTarget) Spec {
	s.LikeCount = true
	s.Target = kind
	return s
}

// WithViewerLikeFlag joins whether viewer likes each row.
func (s Spec) WithViewerLikeFlag(kind domain.LikeTarget, viewer domain.Viewer) Spec {
	s.Target = kind
	s.LikedBy = viewer
	return s
}

// WithSubscriberCount joins the subscriber count of each row's channel.
func (s Spec) WithSubscriberCount() Spec {
	s.SubscriberCount = true
	return s
}

// WithViewerSubscribedFlag joins whether viewer subscribes to each row's channel.
func (s Spec) WithViewerSubscribedFlag(viewer domain.Viewer) Spec {
	s.SubscribedBy = viewer
	return s
}

func (s Spec) likeFlag() bool       { return !s.LikedBy.IsAnonymous() }
func (s Spec) subscribedFlag() bool { return !s.SubscribedBy.IsAnonymous() }

func (s Spec) validate() error {
	if (s.LikeCount || s.likeFlag()) && !s.Target.IsValid() {
		return domain.NewValidationError("target", "like joins need a valid target kind")
	}
	return nil
}

// Resolved holds the joined values for one row. Owner is nil when the owner
// no longer exists. Flags are nil when not requested or for anonymous viewers.
type Resolved struct {
	Owner           *domain.Owner
	LikeCount       int64
	IsLiked         *bool
	SubscriberCount int64
	IsSubscribed    *bool
}

// ---------------------------------------------------------------------------
// Resolver
// ---------------------------------------------------------------------------

// Resolver runs batched joins over a set of rows.
type Resolver struct {
	log           *slog.Logger
	users         userRepo
	likes         likeRepo
	subscriptions subscriptionRepo
}

// NewResolver creates a new join resolver.
func NewResolver(log *slog.Logger, users userRepo, likes likeRepo, subscriptions subscriptionRepo) *Resolver {
	return &Resolver{
		log:           log.With("service", "join"),
		users:         users,
		likes:         likes,
		subscriptions: subscriptions,
	}
}

// Resolve runs the joins selected by spec over rows and returns the joined
// values keyed by Ref.ID. Either every join succeeds or an error is returned.
func (r *Resolver) Resolve(ctx context.Context, spec Spec, rows []Ref) (map[uuid.UUID]Resolved, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]Resolved, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := distinct(rows, func(ref Ref) uuid.UUID { return ref.ID })
	channels := distinct(rows, func(ref Ref) uuid.UUID { return ref.ChannelID })

	var (
		owners     map[uuid.UUID]*domain.Owner
		likeCounts map[uuid.UUID]int64
		liked      map[uuid.UUID]bool
		subCounts  map[uuid.UUID]int64
		subscribed map[uuid.UUID]bool
	)

	g, gctx := errgroup.WithContext(ctx)

	if spec.Owner {
		g.Go(func() (err error) {
			owners, err = loadAll(gctx, newLoader(newOwnersBatchFn(r.users)), channels)
			return wrap("owner", err)
		})
	}
	if spec.LikeCount {
		g.Go(func() (err error) {
			likeCounts, err = loadAll(gctx, newLoader(newLikeCountBatchFn(r.likes, spec.Target)), ids)
			return wrap("like count", err)
		})
	}
	if spec.likeFlag() {
		g.Go(func() (err error) {
			liked, err = loadAll(gctx, newLoader(newLikedBatchFn(r.likes, spec.LikedBy.ID, spec.Target)), ids)
			return wrap("viewer like", err)
		})
	}
	if spec.SubscriberCount {
		g.Go(func() (err error) {
			subCounts, err = loadAll(gctx, newLoader(newSubscriberCountBatchFn(r.subscriptions)), channels)
			return wrap("subscriber count", err)
		})
	}
	if spec.subscribedFlag() {
		g.Go(func() (err error) {
			subscribed, err = loadAll(gctx, newLoader(newSubscribedBatchFn(r.subscriptions, spec.SubscribedBy.ID)), channels)
			return wrap("viewer subscription", err)
		})
	}

	if err := g.Wait(); err != nil {
		r.log.WarnContext(ctx, "join failed", slog.Int("rows", len(rows)), slog.String("error", err.Error()))
		return nil, err
	}

	for _, ref := range rows {
		res := Resolved{
			LikeCount:       likeCounts[ref.ID],
			SubscriberCount: subCounts[ref.ChannelID],
		}
		if spec.Owner {
			res.Owner = owners[ref.ChannelID]
		}
		if liked != nil {
			v := liked[ref.ID]
			res.IsLiked = &v
		}
		if subscribed != nil {
			v := subscribed[ref.ChannelID]
			res.IsSubscribed = &v
		}
		out[ref.ID] = res
	}
	return out, nil
}

func wrap(join string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("join %s: %w", join, err)
}

// distinct returns the unique keys of rows in first-seen order.
func distinct(rows []Ref, key func(Ref) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	keys := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		k := key(row)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
