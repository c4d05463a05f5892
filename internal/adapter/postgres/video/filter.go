package video

import (
	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

func where(f domain.VideoFilter) sq.And {
	where := sq.And{}

	if f.OwnerID != nil {
		// sq.Eq would expand a uuid.UUID into its 16 bytes.
		where = append(where, sq.Expr("v.owner_id = ?", *f.OwnerID))
	}
	if f.PublishedOnly {
		where = append(where, sq.Expr("v.is_published"))
	}
	if f.LikedBy != nil {
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM likes l WHERE l.actor_id = ? AND l.target_kind = ? AND l.target_id = v.id)",
			*f.LikedBy, string(domain.LikeTargetVideo),
		))
	}
	for _, term := range f.Terms {
		where = append(where, termMatch(term))
	}

	return where
}

// termMatch matches term against the video's own text or its owner's names.
func termMatch(term string) sq.Sqlizer {
	return sq.Or{
		postgres.TextMatch(term, "v.title", "v.description"),
		sq.Expr("v.owner_id IN (SELECT u.id FROM users u WHERE ?)",
			postgres.TextMatch(term, "u.username", "u.full_name")),
	}
}

func orderBy(f domain.VideoFilter) []string {
	column := "v.created_at"
	switch f.Sort.Key {
	case domain.SortKeyDuration:
		column = "v.duration"
	case domain.SortKeyPopularity:
		column = "v.views"
	}
	order := f.Sort.Order
	if !order.IsValid() {
		order = domain.SortOrderDesc
	}
	return []string{postgres.OrderExpr(column, order), "v.seq ASC"}
}
