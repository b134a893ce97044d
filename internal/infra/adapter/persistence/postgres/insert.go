package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"blog-seeder/internal/infra/db"
)

// insertReturningID runs an INSERT ... RETURNING id statement.
// It goes through QueryContext rather than QueryRowContext so a circuit
// breaker wrapped around q sees the outcome.
func insertReturningID(ctx context.Context, q db.Querier, query string, args ...interface{}) (int64, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, db.Classify(err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, db.Classify(err)
		}
		return 0, fmt.Errorf("insert: %w", sql.ErrNoRows)
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("insert: Scan: %w", err)
	}
	return id, db.Classify(rows.Err())
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
