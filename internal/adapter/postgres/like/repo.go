// Package like implements the Like edge repository using PostgreSQL.
// A like is a tagged edge (actor, target_kind, target_id); the unique
// constraint on that triple is what keeps at most one edge per pair.
package like

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// Repo provides like edge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new like repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// toggleSQL flips the edge in one statement. The insert only runs when the
// delete removed nothing; ON CONFLICT absorbs a concurrent insert of the
// same edge, which shows up as (0, 0).
const toggleSQL = `
WITH del AS (
    DELETE FROM likes
    WHERE actor_id = $1 AND target_kind = $2 AND target_id = $3
    RETURNING id
), ins AS (
    INSERT INTO likes (actor_id, target_kind, target_id)
    SELECT $1, $2, $3
    WHERE NOT EXISTS (SELECT 1 FROM del)
    ON CONFLICT (actor_id, target_kind, target_id) DO NOTHING
    RETURNING id
)
SELECT (SELECT count(*) FROM del), (SELECT count(*) FROM ins)`

const countByTargetsSQL = `
SELECT target_id, count(*)
FROM likes
WHERE target_kind = $1 AND target_id = ANY($2::uuid[])
GROUP BY target_id`

const likedTargetsSQL = `
SELECT target_id
FROM likes
WHERE actor_id = $1 AND target_kind = $2 AND target_id = ANY($3::uuid[])`

const deleteByTargetsSQL = `DELETE FROM likes WHERE target_kind = $1 AND target_id = ANY($2::uuid[])`

const deleteOrphansSQL = `
DELETE FROM likes l
WHERE (l.target_kind = 'video'   AND NOT EXISTS (SELECT 1 FROM videos   v WHERE v.id = l.target_id))
   OR (l.target_kind = 'comment' AND NOT EXISTS (SELECT 1 FROM comments c WHERE c.id = l.target_id))
   OR (l.target_kind = 'tweet'   AND NOT EXISTS (SELECT 1 FROM tweets   t WHERE t.id = l.target_id))`

// Toggle deletes the (actor, kind, target) edge if present, otherwise creates it.
func (r *Repo) Toggle(ctx context.Context, actorID uuid.UUID, kind domain.LikeTarget, targetID uuid.UUID) (domain.ToggleOutcome, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var deleted, inserted int64
	if err := q.QueryRow(ctx, toggleSQL, actorID, string(kind), targetID).Scan(&deleted, &inserted); err != nil {
		return 0, postgres.MapError(err, "like", targetID)
	}
	return outcome(deleted, inserted), nil
}

// CountByTargets returns the number of likes per target. Targets without
// likes are absent from the map.
func (r *Repo) CountByTargets(ctx context.Context, kind domain.LikeTarget, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, countByTargetsSQL, string(kind), targetIDs)
	if err != nil {
		return nil, postgres.MapListError(err, "count likes")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id uuid.UUID
			n  int64
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan like count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapListError(err, "count likes")
	}
	return counts, nil
}

// LikedTargets returns which of targetIDs the actor has liked.
func (r *Repo) LikedTargets(ctx context.Context, actorID uuid.UUID, kind domain.LikeTarget, targetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return liked, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids, err := postgres.QueryAll(ctx, q, likedTargetsSQL, []any{actorID, string(kind), targetIDs}, scanID)
	if err != nil {
		return nil, postgres.MapListError(err, "liked targets")
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// DeleteByTargets removes every like on the given targets and returns how
// many edges were removed.
func (r *Repo) DeleteByTargets(ctx context.Context, kind domain.LikeTarget, targetIDs []uuid.UUID) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByTargetsSQL, string(kind), targetIDs)
	if err != nil {
		return 0, postgres.MapListError(err, "delete likes")
	}
	return tag.RowsAffected(), nil
}

// DeleteOrphans removes likes whose target no longer exists.
func (r *Repo) DeleteOrphans(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteOrphansSQL)
	if err != nil {
		return 0, postgres.MapListError(err, "delete orphaned likes")
	}
	return tag.RowsAffected(), nil
}

func outcome(deleted, inserted int64) domain.ToggleOutcome {
	switch {
	case deleted > 0:
		return domain.ToggleRemoved
	case inserted > 0:
		return domain.ToggleCreated
	default:
		return domain.ToggleConflict
	}
}

func scanID(row pgx.Row) (uuid.UUID, error) {
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
