// Package user implements the read-only User repository using PostgreSQL.
// Accounts are provisioned elsewhere; this service resolves them as owners.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// Repo provides user lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	getByIDSQL = `
SELECT id, email, username, full_name, avatar_url, created_at, updated_at
FROM users WHERE id = $1`

	getPublicByIDsSQL = `
SELECT id, username, full_name, avatar_url
FROM users WHERE id = ANY($1::uuid[])`

	existsSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
)

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(
		&u.ID, &u.Email, &u.Username, &u.FullName, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// Exists reports whether a user with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var ok bool
	if err := q.QueryRow(ctx, existsSQL, id).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return ok, nil
}

// GetPublicByIDs returns the public projection of every existing user in ids.
// Missing ids are absent from the map.
func (r *Repo) GetPublicByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Owner, error) {
	owners := make(map[uuid.UUID]domain.Owner, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.QueryAll(ctx, q, getPublicByIDsSQL, []any{ids}, func(row pgx.Row) (domain.Owner, error) {
		var o domain.Owner
		err := row.Scan(&o.ID, &o.Username, &o.FullName, &o.AvatarURL)
		return o, err
	})
	if err != nil {
		return nil, postgres.MapListError(err, "get users by ids")
	}
	for _, o := range rows {
		owners[o.ID] = o
	}
	return owners, nil
}
