// Package video implements the Video repository using PostgreSQL.
// Besides CRUD it owns the dynamic feed scan (filter, search, sort and
// paginate in one statement), channel aggregates and watch history.
package video

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// Repo provides video persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new video repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const videoColumns = `v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description,
v.duration, v.views, v.is_published, v.created_at, v.updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + videoColumns + ` FROM videos v WHERE v.id = $1`

const getByIDsSQL = `SELECT ` + videoColumns + ` FROM videos v WHERE v.id = ANY($1::uuid[])`

const createSQL = `
INSERT INTO videos AS v (id, owner_id, video_url, thumbnail_url, title, description, duration, is_published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + videoColumns

const updateSQL = `
UPDATE videos AS v SET
    title         = COALESCE($2, v.title),
    description   = COALESCE($3, v.description),
    thumbnail_url = COALESCE($4, v.thumbnail_url),
    updated_at    = now()
WHERE v.id = $1
RETURNING ` + videoColumns

const togglePublishedSQL = `
UPDATE videos AS v SET is_published = NOT v.is_published, updated_at = now()
WHERE v.id = $1
RETURNING ` + videoColumns

const incrementViewsSQL = `UPDATE videos SET views = views + 1 WHERE id = $1`

const deleteSQL = `DELETE FROM videos WHERE id = $1`

const viewsByOwnerSQL = `SELECT id, views FROM videos WHERE owner_id = $1 ORDER BY seq`

// latestPublishedByOwnersSQL picks one row per owner: the newest published
// upload, insertion order breaking ties.
const latestPublishedByOwnersSQL = `
SELECT DISTINCT ON (v.owner_id) ` + videoColumns + `
FROM videos v
WHERE v.owner_id = ANY($1::uuid[]) AND v.is_published
ORDER BY v.owner_id, v.created_at DESC, v.seq DESC`

const addWatchSQL = `
INSERT INTO watch_history (user_id, video_id) VALUES ($1, $2)
ON CONFLICT (user_id, video_id) DO NOTHING`

// Watched videos that were unpublished since are hidden unless the user owns them.
const countWatchedSQL = `
SELECT count(*)
FROM watch_history w
JOIN videos v ON v.id = w.video_id
WHERE w.user_id = $1 AND (v.is_published OR v.owner_id = $1)`

const listWatchedSQL = `
SELECT w.video_id
FROM watch_history w
JOIN videos v ON v.id = w.video_id
WHERE w.user_id = $1 AND (v.is_published OR v.owner_id = $1)
ORDER BY w.seq DESC
LIMIT $2 OFFSET $3`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a video by primary key regardless of publish state.
// Returns domain.ErrNotFound if the video does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVideo(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "video", id)
	}
	return &v, nil
}

// GetByIDs returns the videos with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Video, error) {
	if len(ids) == 0 {
		return []domain.Video{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	videos, err := postgres.QueryAll(ctx, q, getByIDsSQL, []any{ids}, scanVideo)
	if err != nil {
		return nil, postgres.MapListError(err, "get videos by ids")
	}
	return videos, nil
}

// Scan runs a filtered, searched, sorted and paginated scan over videos and
// returns the page together with the size of the whole filtered set.
func (r *Repo) Scan(ctx context.Context, f domain.VideoFilter) ([]domain.Video, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	return postgres.ScanPage(ctx, q, postgres.PageScan{
		From:    "videos v",
		Columns: []string{videoColumns},
		Where:   where(f),
		OrderBy: orderBy(f),
		Limit:   f.Limit,
		Offset:  f.Offset,
	}, scanVideo)
}

// ViewsByOwner returns (id, views) for every video of the owner, published
// or not, in upload order.
func (r *Repo) ViewsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.VideoViews, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.QueryAll(ctx, q, viewsByOwnerSQL, []any{ownerID}, func(row pgx.Row) (domain.VideoViews, error) {
		var vv domain.VideoViews
		err := row.Scan(&vv.ID, &vv.Views)
		return vv, err
	})
	if err != nil {
		return nil, postgres.MapListError(err, "views by owner")
	}
	return rows, nil
}

// LatestPublishedByOwners returns, for each owner that has one, the most
// recently uploaded published video.
func (r *Repo) LatestPublishedByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]domain.Video, error) {
	result := make(map[uuid.UUID]domain.Video, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return result, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	videos, err := postgres.QueryAll(ctx, q, latestPublishedByOwnersSQL, []any{ownerIDs}, scanVideo)
	if err != nil {
		return nil, postgres.MapListError(err, "latest videos by owners")
	}
	for _, v := range videos {
		result[v.OwnerID] = v
	}
	return result, nil
}

// WatchedIDs returns a page of the user's watch history, most recent first,
// with the total number of watched videos.
func (r *Repo) WatchedIDs(ctx context.Context, userID uuid.UUID, limit, offset int) ([]uuid.UUID, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int64
	if err := q.QueryRow(ctx, countWatchedSQL, userID).Scan(&total); err != nil {
		return nil, 0, postgres.MapListError(err, "count watch history")
	}
	if total == 0 {
		return []uuid.UUID{}, 0, nil
	}

	ids, err := postgres.QueryAll(ctx, q, listWatchedSQL, []any{userID, limit, offset}, func(row pgx.Row) (uuid.UUID, error) {
		var id uuid.UUID
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, 0, postgres.MapListError(err, "list watch history")
	}
	return ids, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new video and returns the persisted row.
func (r *Repo) Create(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	created, err := scanVideo(q.QueryRow(ctx, createSQL,
		v.ID, v.OwnerID, v.VideoURL, v.ThumbnailURL, v.Title, v.Description, v.Duration, v.IsPublished,
	))
	if err != nil {
		return nil, postgres.MapError(err, "video", v.ID)
	}
	return &created, nil
}

// Update applies the non-nil fields of params.
// Returns domain.ErrNotFound if the video does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.VideoUpdateParams) (*domain.Video, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanVideo(q.QueryRow(ctx, updateSQL, id, params.Title, params.Description, params.ThumbnailURL))
	if err != nil {
		return nil, postgres.MapError(err, "video", id)
	}
	return &updated, nil
}

// TogglePublished flips is_published and returns the updated row.
func (r *Repo) TogglePublished(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanVideo(q.QueryRow(ctx, togglePublishedSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "video", id)
	}
	return &updated, nil
}

// IncrementViews adds one view. Returns domain.ErrNotFound if the video is gone.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, incrementViewsSQL, id)
	if err != nil {
		return postgres.MapError(err, "video", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddToWatchHistory records that the user watched the video. Re-watching
// keeps the original position.
func (r *Repo) AddToWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, addWatchSQL, userID, videoID); err != nil {
		return postgres.MapError(err, "watch_history", videoID)
	}
	return nil
}

// Delete removes a video. Comments, playlist memberships and watch history
// rows go with it through foreign keys; like edges are the caller's job.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "video", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanVideo(row pgx.Row) (domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.VideoURL, &v.ThumbnailURL, &v.Title, &v.Description,
		&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}
