package db

import (
	"context"
	"fmt"

	"blog-seeder/internal/domain/entity"
)

// schema holds the DDL for one dialect, applied in order.
type schema struct {
	tables  []string
	indexes []string
}

var schemas = map[Dialect]schema{
	DialectPostgres: {
		tables: []string{`
CREATE TABLE IF NOT EXISTS users (
    id             BIGSERIAL PRIMARY KEY,
    name           TEXT NOT NULL,
    email          TEXT NOT NULL,
    password       TEXT NOT NULL,
    remember_token VARCHAR(100),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`, `
CREATE TABLE IF NOT EXISTS articles (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    status     BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`},
		indexes: []string{
			// リレーション走査 (user_id = ?) 用
			`CREATE INDEX IF NOT EXISTS idx_articles_user_id ON articles(user_id)`,
		},
	},
	DialectSQLite: {
		tables: []string{`
CREATE TABLE IF NOT EXISTS users (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    name           TEXT NOT NULL,
    email          TEXT NOT NULL,
    password       TEXT NOT NULL,
    remember_token TEXT,
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, `
CREATE TABLE IF NOT EXISTS articles (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    status     BOOLEAN NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`},
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS idx_articles_user_id ON articles(user_id)`,
		},
	},
}

// MigrateUp creates the users and articles tables and their indexes.
// It is safe to run against an already migrated database.
func MigrateUp(ctx context.Context, q Querier, dialect Dialect) error {
	s, ok := schemas[dialect]
	if !ok {
		return fmt.Errorf("migrate up: dialect %q: %w", dialect, entity.ErrInvalidInput)
	}
	for _, stmt := range s.tables {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate up: %w", Classify(err))
		}
	}
	for _, idx := range s.indexes {
		if _, err := q.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("migrate up: %w", Classify(err))
		}
	}
	return nil
}
