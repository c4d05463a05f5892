package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/metrics"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
)

// scanRequest is what the filter, search, sort and paginate stages hand to
// the store.
type scanRequest struct {
	Terms  []string
	Sort   domain.SortSpec
	Limit  int
	Offset int
}

// pipeline describes one feed over rows of T rendered as V.
type pipeline[T, V any] struct {
	name  string
	sorts []domain.SortKey
	scan  func(ctx context.Context, req scanRequest) ([]T, int64, error)
	spec  join.Spec
	ref   func(T) join.Ref
	view  func(T, join.Resolved) V
}

// compose runs p for query q.
func compose[T, V any](ctx context.Context, s *Service, p pipeline[T, V], q domain.ListQuery) (domain.Page[V], error) {
	defer metrics.ObserveFeed(p.name, time.Now())

	page, err := s.limits.Resolve(q.Page)
	if err != nil {
		return domain.Page[V]{}, err
	}

	rows, total, err := p.scan(ctx, scanRequest{
		Terms:  domain.SearchTerms(q.Search),
		Sort:   domain.ParseSort(q.SortBy, q.SortType, p.sorts...),
		Limit:  page.PageSize,
		Offset: page.Offset(),
	})
	if err != nil {
		return domain.Page[V]{}, fmt.Errorf("scan %s: %w", p.name, err)
	}

	views, err := attach(ctx, s.joins, p, rows)
	if err != nil {
		return domain.Page[V]{}, fmt.Errorf("compose %s: %w", p.name, err)
	}
	return domain.NewPage(views, total, page), nil
}

// attach joins rows and renders them in row order.
func attach[T, V any](ctx context.Context, joins joinResolver, p pipeline[T, V], rows []T) ([]V, error) {
	refs := make([]join.Ref, len(rows))
	for i, r := range rows {
		refs[i] = p.ref(r)
	}

	joined, err := joins.Resolve(ctx, p.spec, refs)
	if err != nil {
		return nil, err
	}

	views := make([]V, len(rows))
	for i, r := range rows {
		views[i] = p.view(r, joined[refs[i].ID])
	}
	return views, nil
}
