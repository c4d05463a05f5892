// Package tweet implements the Tweet repository using PostgreSQL.
package tweet

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// Repo provides tweet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tweet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tweetColumns = `t.id, t.owner_id, t.content, t.created_at, t.updated_at`

const (
	getByIDSQL = `SELECT ` + tweetColumns + ` FROM tweets t WHERE t.id = $1`

	createSQL = `
INSERT INTO tweets AS t (id, owner_id, content)
VALUES ($1, $2, $3)
RETURNING ` + tweetColumns

	updateSQL = `
UPDATE tweets AS t SET content = $2, updated_at = now()
WHERE t.id = $1
RETURNING ` + tweetColumns

	deleteSQL = `DELETE FROM tweets WHERE id = $1`
)

// GetByID returns a tweet by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tw, err := scanTweet(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "tweet", id)
	}
	return &tw, nil
}

// Scan returns one page of tweets and the size of the filtered set.
func (r *Repo) Scan(ctx context.Context, f domain.TweetFilter) ([]domain.Tweet, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.OwnerID != nil {
		where = append(where, sq.Expr("t.owner_id = ?", *f.OwnerID))
	}
	for _, term := range f.Terms {
		where = append(where, postgres.TextMatch(term, "t.content"))
	}

	return postgres.ScanPage(ctx, q, postgres.PageScan{
		From:    "tweets t",
		Columns: []string{tweetColumns},
		Where:   where,
		OrderBy: []string{postgres.OrderExpr("t.created_at", f.Sort.Order), "t.seq ASC"},
		Limit:   f.Limit,
		Offset:  f.Offset,
	}, scanTweet)
}

// Create inserts a new tweet.
func (r *Repo) Create(ctx context.Context, tw *domain.Tweet) (*domain.Tweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if tw.ID == uuid.Nil {
		tw.ID = uuid.New()
	}
	created, err := scanTweet(q.QueryRow(ctx, createSQL, tw.ID, tw.OwnerID, tw.Content))
	if err != nil {
		return nil, postgres.MapError(err, "tweet", tw.ID)
	}
	return &created, nil
}

// Update replaces the tweet content.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, content string) (*domain.Tweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanTweet(q.QueryRow(ctx, updateSQL, id, content))
	if err != nil {
		return nil, postgres.MapError(err, "tweet", id)
	}
	return &updated, nil
}

// Delete removes a tweet. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "tweet", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tweet %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTweet(row pgx.Row) (domain.Tweet, error) {
	var tw domain.Tweet
	err := row.Scan(&tw.ID, &tw.OwnerID, &tw.Content, &tw.CreatedAt, &tw.UpdatedAt)
	return tw, err
}
