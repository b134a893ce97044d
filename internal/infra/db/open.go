package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"blog-seeder/internal/domain/entity"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
// A seed run is a single sequential client, so the pool is kept small.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

const pingTimeout = 5 * time.Second

// Open creates the connection pool for the dialect and verifies it with a ping.
// An unreachable datastore is reported as entity.ErrStoreUnavailable.
func Open(ctx context.Context, dialect Dialect, dsn string, cfg ConnectionConfig) (*sql.DB, error) {
	driver := dialect.DriverName()
	if driver == "" {
		return nil, fmt.Errorf("open: dialect %q has no sql driver: %w", dialect, entity.ErrInvalidInput)
	}
	return open(ctx, driver, dsn, cfg)
}

func open(ctx context.Context, driver, dsn string, cfg ConnectionConfig) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open: ping: %w: %w", entity.ErrStoreUnavailable, err)
	}

	slog.Info("database connection established successfully")
	return db, nil
}
