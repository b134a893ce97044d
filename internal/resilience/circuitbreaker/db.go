package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"blog-seeder/internal/domain/entity"
	"blog-seeder/internal/infra/db"
)

// DBCircuitBreaker wraps a database connection with circuit breaker protection.
// It satisfies db.Querier, so repositories can be built on top of it directly.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

var _ db.Querier = (*DBCircuitBreaker)(nil)

// DBConfig returns configuration optimized for database circuit breakers.
// Opens after 5 consecutive failures, 30 second timeout.
// Constraint violations mean the database answered, so they do not count as failures.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3, // Allow 3 test requests in half-open state
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0, // Open on 100% failure (5+ consecutive failures)
		MinRequests:      5,   // Require 5 failures before tripping
		IsSuccessful:     isHealthyResponse,
	}
}

func isHealthyResponse(err error) bool {
	return err == nil || errors.Is(db.Classify(err), entity.ErrConstraintViolation)
}

// NewDBCircuitBreaker creates a new database circuit breaker.
func NewDBCircuitBreaker(conn *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(conn, DBConfig())
}

// NewDBCircuitBreakerWithConfig creates a new database circuit breaker with custom configuration.
func NewDBCircuitBreakerWithConfig(conn *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(cfg),
		db: conn,
	}
}

// QueryContext executes a query with circuit breaker protection.
// If the circuit is open, it returns gobreaker.ErrOpenState without hitting the database.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})

	if err != nil {
		return nil, err
	}

	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
// If the circuit is open, it returns gobreaker.ErrOpenState without hitting the database.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})

	if err != nil {
		return nil, err
	}

	return result.(sql.Result), nil
}

// QueryRowContext passes through to the pool.
// sql.Row defers its error until Scan, so the breaker cannot observe it; inserts
// therefore go through QueryContext.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}
