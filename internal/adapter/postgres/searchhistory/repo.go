// Package searchhistory implements the SearchHistoryEntry repository using PostgreSQL.
package searchhistory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// Repo provides search history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new search history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, owner_id, query, created_at`

const (
	getByIDSQL = `SELECT ` + entryColumns + ` FROM search_history WHERE id = $1`

	createSQL = `
INSERT INTO search_history (id, owner_id, query) VALUES ($1, $2, $3)
RETURNING ` + entryColumns

	countSQL = `SELECT count(*) FROM search_history WHERE owner_id = $1`

	listSQL = `
SELECT ` + entryColumns + `
FROM search_history
WHERE owner_id = $1
ORDER BY seq DESC
LIMIT $2 OFFSET $3`

	deleteSQL    = `DELETE FROM search_history WHERE id = $1`
	deleteAllSQL = `DELETE FROM search_history WHERE owner_id = $1`
	pruneSQL     = `DELETE FROM search_history WHERE created_at < $1`
)

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SearchHistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "search history entry", id)
	}
	return &e, nil
}

// Create records a query for the owner.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, query string) (*domain.SearchHistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	e, err := scanEntry(q.QueryRow(ctx, createSQL, id, ownerID, query))
	if err != nil {
		return nil, postgres.MapError(err, "search history entry", id)
	}
	return &e, nil
}

// List returns one page of the owner's entries, newest first, with the
// owner's total entry count.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.SearchHistoryEntry, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int64
	if err := q.QueryRow(ctx, countSQL, ownerID).Scan(&total); err != nil {
		return nil, 0, postgres.MapListError(err, "count search history")
	}
	if total == 0 {
		return []domain.SearchHistoryEntry{}, 0, nil
	}

	entries, err := postgres.QueryAll(ctx, q, listSQL, []any{ownerID, limit, offset}, scanEntry)
	if err != nil {
		return nil, 0, postgres.MapListError(err, "list search history")
	}
	return entries, total, nil
}

// Delete removes one entry.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "search history entry", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "search history entry", id)
	}
	return nil
}

// DeleteAll removes every entry of the owner and returns how many were removed.
func (r *Repo) DeleteAll(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteAllSQL, ownerID)
	if err != nil {
		return 0, postgres.MapListError(err, "clear search history")
	}
	return tag.RowsAffected(), nil
}

// DeleteOlderThan removes entries of every user recorded before cutoff.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, pruneSQL, cutoff)
	if err != nil {
		return 0, postgres.MapListError(err, "prune search history")
	}
	return tag.RowsAffected(), nil
}

func scanEntry(row pgx.Row) (domain.SearchHistoryEntry, error) {
	var e domain.SearchHistoryEntry
	err := row.Scan(&e.ID, &e.OwnerID, &e.Query, &e.CreatedAt)
	return e, err
}
