package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder is a squirrel statement builder using $N placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SelectAll renders query and scans every row into dst (a pointer to a slice
// of db-tagged structs) using the querier carried by ctx.
func SelectAll(ctx context.Context, q Querier, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Page applies limit/offset to a select builder.
func Page(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return b
}
