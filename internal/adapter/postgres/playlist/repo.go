// Package playlist implements the Playlist repository using PostgreSQL.
// Membership is a set keyed by (playlist_id, video_id); seq keeps the
// insertion order.
package playlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// Repo provides playlist persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new playlist repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const playlistColumns = `p.id, p.owner_id, p.name, p.description, p.is_public, p.created_at, p.updated_at`

const videoColumns = `v.id, v.owner_id, v.video_url, v.thumbnail_url, v.title, v.description,
v.duration, v.views, v.is_published, v.created_at, v.updated_at`

const (
	getByIDSQL = `SELECT ` + playlistColumns + ` FROM playlists p WHERE p.id = $1`

	createSQL = `
INSERT INTO playlists AS p (id, owner_id, name, description, is_public)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + playlistColumns

	updateSQL = `
UPDATE playlists AS p SET
    name        = COALESCE($2, p.name),
    description = COALESCE($3, p.description),
    is_public   = COALESCE($4, p.is_public),
    updated_at  = now()
WHERE p.id = $1
RETURNING ` + playlistColumns

	deleteSQL = `DELETE FROM playlists WHERE id = $1`

	listByOwnerSQL = `
SELECT ` + playlistColumns + `
FROM playlists p
WHERE p.owner_id = $1 AND (p.is_public OR $2::boolean)
ORDER BY p.seq`

	addVideoSQL = `
INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2)
ON CONFLICT (playlist_id, video_id) DO NOTHING`

	removeVideoSQL = `DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`

	publishedVideosSQL = `
SELECT ` + videoColumns + `
FROM playlist_videos pv
JOIN videos v ON v.id = pv.video_id
WHERE pv.playlist_id = $1 AND v.is_published
ORDER BY pv.seq`

	// Unpublished members are kept in the set but excluded from totals.
	totalsByPlaylistsSQL = `
SELECT pv.playlist_id, count(*), COALESCE(sum(v.views), 0)::bigint
FROM playlist_videos pv
JOIN videos v ON v.id = pv.video_id
WHERE pv.playlist_id = ANY($1::uuid[]) AND v.is_published
GROUP BY pv.playlist_id`
)

// GetByID returns a playlist by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPlaylist(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "playlist", id)
	}
	return &p, nil
}

// Create inserts a new playlist and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	created, err := scanPlaylist(q.QueryRow(ctx, createSQL, p.ID, p.OwnerID, p.Name, p.Description, p.IsPublic))
	if err != nil {
		return nil, postgres.MapError(err, "playlist", p.ID)
	}
	return &created, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PlaylistUpdateParams) (*domain.Playlist, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPlaylist(q.QueryRow(ctx, updateSQL, id, params.Name, params.Description, params.IsPublic))
	if err != nil {
		return nil, postgres.MapError(err, "playlist", id)
	}
	return &p, nil
}

// Delete removes a playlist and its membership rows.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "playlist", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "playlist", id)
	}
	return nil
}

// ListByOwner returns the owner's playlists in creation order. Private
// playlists are included only when includePrivate is set.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, includePrivate bool) ([]domain.Playlist, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	playlists, err := postgres.QueryAll(ctx, q, listByOwnerSQL, []any{ownerID, includePrivate}, scanPlaylist)
	if err != nil {
		return nil, postgres.MapListError(err, "list playlists")
	}
	return playlists, nil
}

// AddVideo inserts videoID into the playlist set. It reports whether the
// video was newly added.
func (r *Repo) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addVideoSQL, playlistID, videoID)
	if err != nil {
		return false, postgres.MapError(err, "playlist", playlistID)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveVideo deletes videoID from the playlist set. It reports whether the
// video was a member.
func (r *Repo) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeVideoSQL, playlistID, videoID)
	if err != nil {
		return false, postgres.MapError(err, "playlist", playlistID)
	}
	return tag.RowsAffected() > 0, nil
}

// PublishedVideos returns the published member videos in insertion order.
func (r *Repo) PublishedVideos(ctx context.Context, playlistID uuid.UUID) ([]domain.Video, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	videos, err := postgres.QueryAll(ctx, q, publishedVideosSQL, []any{playlistID}, func(row pgx.Row) (domain.Video, error) {
		var v domain.Video
		err := row.Scan(
			&v.ID, &v.OwnerID, &v.VideoURL, &v.ThumbnailURL, &v.Title, &v.Description,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
		)
		return v, err
	})
	if err != nil {
		return nil, postgres.MapListError(err, "playlist videos")
	}
	return videos, nil
}

// TotalsByPlaylists returns published-member totals per playlist. Playlists
// without published members are absent from the map.
func (r *Repo) TotalsByPlaylists(ctx context.Context, playlistIDs []uuid.UUID) (map[uuid.UUID]domain.PlaylistTotals, error) {
	totals := make(map[uuid.UUID]domain.PlaylistTotals, len(playlistIDs))
	if len(playlistIDs) == 0 {
		return totals, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, totalsByPlaylistsSQL, playlistIDs)
	if err != nil {
		return nil, postgres.MapListError(err, "playlist totals")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id uuid.UUID
			t  domain.PlaylistTotals
		)
		if err := rows.Scan(&id, &t.TotalVideos, &t.TotalViews); err != nil {
			return nil, fmt.Errorf("scan playlist totals: %w", err)
		}
		totals[id] = t
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "playlist totals")
	}
	return totals, nil
}

func scanPlaylist(row pgx.Row) (domain.Playlist, error) {
	var p domain.Playlist
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
