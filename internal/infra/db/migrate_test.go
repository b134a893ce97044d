package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-seeder/internal/domain/entity"
)

func TestMigrateUp_Success(t *testing.T) {
	for _, dialect := range []Dialect{DialectPostgres, DialectSQLite} {
		t.Run(string(dialect), func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			// Expect users table before articles: articles references it
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS articles").
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_articles_user_id").
				WillReturnResult(sqlmock.NewResult(0, 0))

			err = MigrateUp(context.Background(), db, dialect)
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrateUp_ArticlesCascadeOnUserDelete(t *testing.T) {
	for dialect, s := range schemas {
		t.Run(string(dialect), func(t *testing.T) {
			require.Len(t, s.tables, 2)
			assert.Contains(t, s.tables[1], "REFERENCES users(id) ON DELETE CASCADE")
			assert.Contains(t, s.tables[1], "user_id")
			// email is intentionally not unique
			assert.NotContains(t, s.tables[0], "UNIQUE")
		})
	}
}

func TestMigrateUp_UsersTableError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnError(sql.ErrConnDone)

	err = MigrateUp(context.Background(), db, DialectPostgres)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_IndexError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS articles").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX").
		WillReturnError(sql.ErrTxDone)

	err = MigrateUp(context.Background(), db, DialectSQLite)
	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_UnknownDialect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = MigrateUp(context.Background(), db, DialectMemory)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}
