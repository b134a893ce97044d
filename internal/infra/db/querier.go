package db

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the persistence adapters use.
// *sql.DB, *sql.Tx and *circuitbreaker.DBCircuitBreaker all satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
