package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/sony/gobreaker"

	"blog-seeder/internal/domain/entity"
)

// Classify tags a driver error with the matching domain sentinel so callers can
// use errors.Is. Errors that fit no category, and errors already tagged, are
// returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, entity.ErrConstraintViolation) || errors.Is(err, entity.ErrStoreUnavailable) {
		return err
	}
	switch {
	case isConstraintViolation(err):
		return fmt.Errorf("%w: %w", entity.ErrConstraintViolation, err)
	case isUnavailable(err):
		return fmt.Errorf("%w: %w", entity.ErrStoreUnavailable, err)
	default:
		return err
	}
}

func isConstraintViolation(err error) bool {
	// SQLSTATE class 23: integrity constraint violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

func isUnavailable(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrCantOpen || liteErr.Code == sqlite3.ErrBusy
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
