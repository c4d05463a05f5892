package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxOffset is the deepest row a page may start at.
	MaxOffset = math.MaxInt32
)

// PageRequest selects a 1-indexed page. Zero values mean "use the default".
type PageRequest struct {
	Page     int
	PageSize int
}

// Validate rejects negative page numbers and sizes, and page numbers that
// start beyond MaxOffset at any page size.
func (p PageRequest) Validate() error {
	var errs []FieldError
	switch {
	case p.Page < 0:
		errs = append(errs, FieldError{Field: "page", Message: "must be positive"})
	case p.Page-1 > MaxOffset:
		errs = append(errs, FieldError{Field: "page", Message: "too large"})
	}
	if p.PageSize < 0 {
		errs = append(errs, FieldError{Field: "limit", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// PageLimits bounds the page size of a listing. Zero fields fall back to
// DefaultPageSize and MaxPageSize.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// Resolve validates p, fills unset fields, clamps the page size and rejects
// a page whose offset would pass MaxOffset. The result is safe to call
// Offset on.
func (l PageLimits) Resolve(p PageRequest) (PageRequest, error) {
	if err := p.Validate(); err != nil {
		return p, err
	}
	defaultSize, maxSize := l.DefaultSize, l.MaxSize
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}

	if lastPage := MaxOffset/p.PageSize + 1; p.Page > lastPage {
		return p, NewValidationError("page", fmt.Sprintf("too large (max %d at limit %d)", lastPage, p.PageSize))
	}
	return p, nil
}

// Offset returns the number of rows to skip. Call on a resolved request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one page of a filtered, sorted result set. TotalCount is the
// size of the whole filtered set, not of this page.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPage builds a Page from its items, the total count and the request
// that produced it. req must be normalized.
func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	}
	return Page[T]{
		Items:       items,
		TotalCount:  total,
		Page:        req.Page,
		PageSize:    req.PageSize,
		TotalPages:  totalPages,
		HasNextPage: req.Page < totalPages,
		HasPrevPage: req.Page > 1,
	}
}

// SortSpec is a resolved sort key and direction.
type SortSpec struct {
	Key   SortKey
	Order SortOrder
}

// DefaultSort is applied when the client asks for no sort or an unknown one.
var DefaultSort = SortSpec{Key: SortKeyUploadDate, Order: SortOrderDesc}

// ParseSort resolves client sort parameters against the keys a listing
// supports. An absent or unsupported key yields DefaultSort. For a supported
// key, sortType ("asc"/"desc", any case) overrides the key's default order.
func ParseSort(sortBy, sortType string, allowed ...SortKey) SortSpec {
	key := SortKey(strings.TrimSpace(sortBy))
	supported := false
	for _, a := range allowed {
		if a == key {
			supported = true
			break
		}
	}
	if !supported {
		return DefaultSort
	}

	order := SortOrder(strings.ToLower(strings.TrimSpace(sortType)))
	if !order.IsValid() {
		order = key.DefaultOrder()
	}
	return SortSpec{Key: key, Order: order}
}

// ListQuery carries the client-facing listing parameters.
type ListQuery struct {
	Search   string
	SortBy   string
	SortType string
	Page     PageRequest
}
