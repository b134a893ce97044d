package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"blog-seeder/internal/infra/db"
)

// insertID runs an INSERT and returns the rowid SQLite assigned to it.
func insertID(ctx context.Context, q db.Querier, query string, args ...interface{}) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, db.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert: LastInsertId: %w", err)
	}
	return id, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...any) error
}
