// Package graph lists the subscription graph around a channel or user.
package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type subscriptionRepo interface {
	ListSubscribers(ctx context.Context, channelID uuid.UUID, limit, offset int) ([]domain.SubscriberEdge, int64, error)
	ListChannels(ctx context.Context, subscriberID uuid.UUID, limit, offset int) ([]domain.SubscriberEdge, int64, error)
}

type videoRepo interface {
	LatestPublishedByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]domain.Video, error)
}

type joinResolver interface {
	Resolve(ctx context.Context, spec join.Spec, rows []join.Ref) (map[uuid.UUID]join.Resolved, error)
}

// Service provides subscriber and subscription listings.
type Service struct {
	users         userRepo
	subscriptions subscriptionRepo
	videos        videoRepo
	joins         joinResolver
	limits        domain.PageLimits
	log           *slog.Logger
}

// NewService creates a new graph service.
func NewService(
	log *slog.Logger,
	limits domain.PageLimits,
	users userRepo,
	subscriptions subscriptionRepo,
	videos videoRepo,
	joins joinResolver,
) *Service {
	return &Service{
		users:         users,
		subscriptions: subscriptions,
		videos:        videos,
		joins:         joins,
		limits:        limits,
		log:           log.With("service", "graph"),
	}
}

// ListSubscribers returns one page of a channel's subscribers in subscription
// order. Each subscriber carries its own subscriber count and whether the
// channel subscribes back.
func (s *Service) ListSubscribers(ctx context.Context, channelID uuid.UUID, page domain.PageRequest) (domain.Page[domain.SubscriberView], error) {
	viewer := viewerFromCtx(ctx)

	page, err := s.prepare(ctx, channelID, page)
	if err != nil {
		return domain.Page[domain.SubscriberView]{}, err
	}

	edges, total, err := s.subscriptions.ListSubscribers(ctx, channelID, page.PageSize, page.Offset())
	if err != nil {
		return domain.Page[domain.SubscriberView]{}, fmt.Errorf("list subscribers: %w", err)
	}
	refs := edgeRefs(edges)

	spec := join.Spec{}.
		WithOwner().
		WithSubscriberCount().
		WithViewerSubscribedFlag(domain.ViewerOf(channelID))
	joined, err := s.joins.Resolve(ctx, spec, refs)
	if err != nil {
		return domain.Page[domain.SubscriberView]{}, fmt.Errorf("compose subscribers: %w", err)
	}

	var viewerFlags map[uuid.UUID]join.Resolved
	if !viewer.IsAnonymous() && viewer.ID != channelID {
		viewerFlags, err = s.joins.Resolve(ctx, join.Spec{}.WithViewerSubscribedFlag(viewer), refs)
		if err != nil {
			return domain.Page[domain.SubscriberView]{}, fmt.Errorf("compose viewer subscriptions: %w", err)
		}
	}

	items := make([]domain.SubscriberView, len(edges))
	for i, e := range edges {
		r := joined[e.UserID]
		item := domain.SubscriberView{
			Owner:           ownerOrID(r.Owner, e.UserID),
			SubscriberCount: r.SubscriberCount,
			IsMutual:        r.IsSubscribed != nil && *r.IsSubscribed,
			SubscribedAt:    e.CreatedAt,
		}
		switch {
		case viewerFlags != nil:
			item.IsSubscribed = viewerFlags[e.UserID].IsSubscribed
		case viewer.ID == channelID:
			item.IsSubscribed = r.IsSubscribed
		}
		items[i] = item
	}
	return domain.NewPage(items, total, page), nil
}

// ListSubscribedChannels returns one page of the channels subscriberID
// subscribes to, each with its subscriber count and latest published video.
func (s *Service) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID, page domain.PageRequest) (domain.Page[domain.ChannelView], error) {
	viewer := viewerFromCtx(ctx)

	page, err := s.prepare(ctx, subscriberID, page)
	if err != nil {
		return domain.Page[domain.ChannelView]{}, err
	}

	edges, total, err := s.subscriptions.ListChannels(ctx, subscriberID, page.PageSize, page.Offset())
	if err != nil {
		return domain.Page[domain.ChannelView]{}, fmt.Errorf("list channels: %w", err)
	}
	refs := edgeRefs(edges)
	ids := make([]uuid.UUID, len(edges))
	for i, e := range edges {
		ids[i] = e.UserID
	}

	var (
		joined map[uuid.UUID]join.Resolved
		latest map[uuid.UUID]domain.Video
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		spec := join.Spec{}.
			WithOwner().
			WithSubscriberCount().
			WithViewerSubscribedFlag(viewer)
		joined, err = s.joins.Resolve(gctx, spec, refs)
		return err
	})
	g.Go(func() (err error) {
		latest, err = s.videos.LatestPublishedByOwners(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.ChannelView]{}, fmt.Errorf("compose channels: %w", err)
	}

	items := make([]domain.ChannelView, len(edges))
	for i, e := range edges {
		r := joined[e.UserID]
		item := domain.ChannelView{
			Owner:           ownerOrID(r.Owner, e.UserID),
			SubscriberCount: r.SubscriberCount,
			IsSubscribed:    r.IsSubscribed,
			SubscribedAt:    e.CreatedAt,
		}
		if v, ok := latest[e.UserID]; ok {
			summary := domain.NewVideoSummary(v)
			item.LatestVideo = &summary
		}
		items[i] = item
	}
	return domain.NewPage(items, total, page), nil
}

// prepare resolves the page and checks that userID exists.
func (s *Service) prepare(ctx context.Context, userID uuid.UUID, page domain.PageRequest) (domain.PageRequest, error) {
	page, err := s.limits.Resolve(page)
	if err != nil {
		return page, err
	}
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return page, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return page, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return page, nil
}

func edgeRefs(edges []domain.SubscriberEdge) []join.Ref {
	refs := make([]join.Ref, len(edges))
	for i, e := range edges {
		refs[i] = join.Ref{ID: e.UserID, ChannelID: e.UserID}
	}
	return refs
}

// ownerOrID keeps a row whose user vanished between the edge read and the
// owner join.
func ownerOrID(o *domain.Owner, id uuid.UUID) domain.Owner {
	if o == nil {
		return domain.Owner{ID: id}
	}
	return *o
}

func viewerFromCtx(ctx context.Context) domain.Viewer {
	return domain.ViewerOf(ctxutil.ViewerID(ctx))
}
