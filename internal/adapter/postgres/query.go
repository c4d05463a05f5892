package postgres

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// Psql is the squirrel statement builder configured for PostgreSQL placeholders.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PageScan describes a filtered, sorted, paginated scan over one table.
// Where is shared by the count query and the page query so TotalCount always
// describes the same set the page was cut from.
type PageScan struct {
	From    string
	Columns []string
	Where   sq.And
	OrderBy []string
	Limit   int
	Offset  int
}

// ScanPage runs the count query and the page query of s and maps every page
// row through scan.
func ScanPage[T any](ctx context.Context, q Querier, s PageScan, scan func(pgx.Row) (T, error)) ([]T, int64, error) {
	countSQL, countArgs, err := Psql.Select("count(*)").From(s.From).Where(s.Where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, MapListError(err, "count "+s.From)
	}
	if total == 0 || s.Offset >= int(total) {
		return []T{}, total, nil
	}

	pageSQL, pageArgs, err := Psql.Select(s.Columns...).
		From(s.From).
		Where(s.Where).
		OrderBy(s.OrderBy...).
		Limit(uint64(s.Limit)).
		Offset(uint64(s.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}

	items, err := QueryAll(ctx, q, pageSQL, pageArgs, scan)
	if err != nil {
		return nil, 0, MapListError(err, "scan "+s.From)
	}
	return items, total, nil
}

// QueryAll runs sql and maps every row through scan.
func QueryAll[T any](ctx context.Context, q Querier, sql string, args []any, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// EscapeLike escapes LIKE wildcards so s matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// TextMatch returns a predicate that holds when term matches at least one of
// columns: as a case-insensitive substring, or, for terms long enough to be
// fuzzy, when some word of the column is within domain.FuzzyMaxEdits edits.
func TextMatch(term string, columns ...string) sq.Sqlizer {
	pattern := "%" + EscapeLike(term) + "%"
	fuzzy := domain.IsFuzzyTerm(term)

	or := make(sq.Or, 0, len(columns)*2)
	for _, c := range columns {
		or = append(or, sq.Expr(c+" ILIKE ?", pattern))
		if fuzzy {
			// levenshtein_less_equal rejects inputs longer than 255 characters.
			or = append(or, sq.Expr(fmt.Sprintf(
				`EXISTS (SELECT 1 FROM regexp_split_to_table(lower(%s), '\s+') AS w(word)
				 WHERE length(w.word) <= 255 AND levenshtein_less_equal(w.word, ?, %d) <= %d)`,
				c, domain.FuzzyMaxEdits, domain.FuzzyMaxEdits,
			), term))
		}
	}
	return or
}

// OrderExpr renders a column and direction for ORDER BY.
func OrderExpr(column string, order domain.SortOrder) string {
	if order == domain.SortOrderAsc {
		return column + " ASC"
	}
	return column + " DESC"
}
