// Package searchhistory keeps each user's own record of the searches they ran.
package searchhistory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

// MaxQueryLength matches the column check on search_history.query.
const MaxQueryLength = 200

type historyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SearchHistoryEntry, error)
	Create(ctx context.Context, ownerID uuid.UUID, query string) (*domain.SearchHistoryEntry, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.SearchHistoryEntry, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// Service implements search history operations. Every operation acts on
// the caller's own entries.
type Service struct {
	log     *slog.Logger
	limits  domain.PageLimits
	entries historyRepo
}

// NewService creates a new search history service.
func NewService(log *slog.Logger, limits domain.PageLimits, entries historyRepo) *Service {
	return &Service{
		log:     log.With("service", "searchhistory"),
		limits:  limits,
		entries: entries,
	}
}

// Record stores a query the caller ran. Whitespace runs are collapsed.
func (s *Service) Record(ctx context.Context, query string) (*domain.SearchHistoryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	q := strings.Join(strings.Fields(query), " ")
	switch {
	case q == "":
		return nil, domain.NewValidationError("query", "required")
	case utf8.RuneCountInString(q) > MaxQueryLength:
		return nil, domain.NewValidationError("query", fmt.Sprintf("too long (max %d)", MaxQueryLength))
	}

	entry, err := s.entries.Create(ctx, userID, q)
	if err != nil {
		return nil, fmt.Errorf("record search: %w", err)
	}
	return entry, nil
}

// List returns one page of the caller's history, newest first.
func (s *Service) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.SearchHistoryEntry], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.SearchHistoryEntry]{}, domain.ErrUnauthorized
	}
	page, err := s.limits.Resolve(page)
	if err != nil {
		return domain.Page[domain.SearchHistoryEntry]{}, err
	}

	items, total, err := s.entries.List(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return domain.Page[domain.SearchHistoryEntry]{}, fmt.Errorf("list search history: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

// Delete removes one of the caller's entries.
func (s *Service) Delete(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return domain.NewValidationError("entryId", "required")
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get search entry: %w", err)
	}
	if entry.OwnerID != userID {
		return fmt.Errorf("search entry %s: %w", entryID, domain.ErrForbidden)
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete search entry: %w", err)
	}
	return nil
}

// Clear removes all of the caller's entries and returns how many went.
func (s *Service) Clear(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.entries.DeleteAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear search history: %w", err)
	}

	s.log.InfoContext(ctx, "search history cleared",
		slog.String("user_id", userID.String()),
		slog.Int64("removed", n),
	)
	return n, nil
}
