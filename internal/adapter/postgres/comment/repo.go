// Package comment implements the Comment repository using PostgreSQL.
package comment

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

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const commentColumns = `c.id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at`

const (
	getByIDSQL = `SELECT ` + commentColumns + ` FROM comments c WHERE c.id = $1`

	createSQL = `
INSERT INTO comments AS c (id, video_id, owner_id, content)
VALUES ($1, $2, $3, $4)
RETURNING ` + commentColumns

	updateSQL = `
UPDATE comments AS c SET content = $2, updated_at = now()
WHERE c.id = $1
RETURNING ` + commentColumns

	deleteSQL = `DELETE FROM comments WHERE id = $1`

	idsByVideoSQL = `SELECT id FROM comments WHERE video_id = $1`
)

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return &c, nil
}

// Scan returns one page of a video's comment thread and the thread size.
func (r *Repo) Scan(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Expr("c.video_id = ?", f.VideoID)}
	for _, term := range f.Terms {
		where = append(where, postgres.TextMatch(term, "c.content"))
	}

	return postgres.ScanPage(ctx, q, postgres.PageScan{
		From:    "comments c",
		Columns: []string{commentColumns},
		Where:   where,
		OrderBy: []string{postgres.OrderExpr("c.created_at", f.Sort.Order), "c.seq ASC"},
		Limit:   f.Limit,
		Offset:  f.Offset,
	}, scanComment)
}

// IDsByVideo returns the ids of every comment on the video.
func (r *Repo) IDsByVideo(ctx context.Context, videoID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids, err := postgres.QueryAll(ctx, q, idsByVideoSQL, []any{videoID}, func(row pgx.Row) (uuid.UUID, error) {
		var id uuid.UUID
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, postgres.MapListError(err, "comment ids by video")
	}
	return ids, nil
}

// Create inserts a new comment. Returns domain.ErrNotFound if the video
// does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	created, err := scanComment(q.QueryRow(ctx, createSQL, c.ID, c.VideoID, c.OwnerID, c.Content))
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return &created, nil
}

// Update replaces the comment content.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanComment(q.QueryRow(ctx, updateSQL, id, content))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return &updated, nil
}

// Delete removes a comment. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
