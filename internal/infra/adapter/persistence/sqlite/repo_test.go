package sqlite_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-seeder/internal/domain/entity"
	"blog-seeder/internal/infra/adapter/persistence/sqlite"
	"blog-seeder/internal/repository"
)

/* ────────────────────────────  ヘルパ  ──────────────────────────── */

func artRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "title", "content", "status", "created_at", "updated_at",
	}).AddRow(
		a.ID, a.UserID, a.Title, a.Content, a.Status, a.CreatedAt, a.UpdatedAt,
	)
}

/* ──────────────────────────── 1. User ──────────────────────────── */

func TestUserRepo_Create(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Grace", "grace@example.com", "hashed", "abcdefghij", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := sqlite.NewUserRepo(db)
	user := &entity.User{Name: "Grace", Email: "grace@example.com", Password: "hashed", RememberToken: "abcdefghij"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, int64(3), user.ID)
	assert.False(t, user.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_BadConn(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("INSERT INTO users").WillReturnError(sqlite3.Error{Code: sqlite3.ErrCantOpen})

	repo := sqlite.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{Name: "g", Email: "g@example.com", Password: "x"})
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
}

func TestUserRepo_Get_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "remember_token", "created_at", "updated_at"}))

	repo := sqlite.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepo_GetByRelation(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users\nWHERE id = ?\nLIMIT 1")).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "remember_token", "created_at", "updated_at"}).
			AddRow(int64(2), "Grace", "grace@example.com", "hashed", nil, now, now))

	repo := sqlite.NewUserRepo(db)
	got, err := repo.GetByRelation(context.Background(), repository.ArticleOwner, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Grace", got.Name)
	assert.Empty(t, got.RememberToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Delete(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = ?")).
		WithArgs(int64(4)).
		WillReturnResult(driver.RowsAffected(0))

	repo := sqlite.NewUserRepo(db)
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), entity.ErrNotFound)
}

func TestUserRepo_Count(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(int64(6)))

	repo := sqlite.NewUserRepo(db)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
}

/* ──────────────────────────── 2. Article ──────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs(int64(1), "title", "content", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(15, 1))

	repo := sqlite.NewArticleRepo(db)
	a := &entity.Article{UserID: 1, Title: "title", Content: "content"}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, int64(15), a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Create_ForeignKey(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("INSERT INTO articles").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})

	repo := sqlite.NewArticleRepo(db)
	err := repo.Create(context.Background(), &entity.Article{UserID: 99, Title: "orphan"})
	assert.ErrorIs(t, err, entity.ErrConstraintViolation)
}

func TestArticleRepo_Get(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{ID: 1, UserID: 2, Title: "t", Content: "c", Status: true, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ?")).
		WithArgs(int64(1)).
		WillReturnRows(artRow(want))

	repo := sqlite.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleRepo_ListByRelation(t *testing.T) {
	t.Parallel()

	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = ?")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "content", "status", "created_at", "updated_at"}).
			AddRow(int64(6), int64(2), "a", "c", true, now, now).
			AddRow(int64(7), int64(2), "b", "c", false, now, now))

	repo := sqlite.NewArticleRepo(db)
	got, err := repo.ListByRelation(context.Background(), repository.UserArticles, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(6), got[0].ID)
	assert.Equal(t, int64(7), got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationQueryBuilder_SelectMany(t *testing.T) {
	t.Parallel()

	q, err := sqlite.NewRelationQueryBuilder().SelectMany(repository.UserArticles, "id")
	require.NoError(t, err)
	assert.Contains(t, q, "WHERE user_id = ?")

	_, err = sqlite.NewRelationQueryBuilder().SelectMany(repository.HasMany{Table: "users"}, "id")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestRelationQueryBuilder_SelectOwner(t *testing.T) {
	t.Parallel()

	q, err := sqlite.NewRelationQueryBuilder().SelectOwner(repository.ArticleOwner, "id")
	require.NoError(t, err)
	assert.Contains(t, q, "FROM users\nWHERE id = ?")

	_, err = sqlite.NewRelationQueryBuilder().SelectOwner(repository.BelongsTo{Table: "articles"}, "id")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}
