package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blog-seeder/internal/domain/entity"
	"blog-seeder/internal/infra/db"
	"blog-seeder/internal/repository"
)

const userColumns = `id, name, email, password, remember_token, created_at, updated_at`

// UserRepo implements the UserRepository interface using SQLite.
type UserRepo struct {
	db           db.Querier
	queryBuilder *RelationQueryBuilder
}

// NewUserRepo creates a new SQLite-backed user repository.
func NewUserRepo(q db.Querier) repository.UserRepository {
	return &UserRepo{
		db:           q,
		queryBuilder: NewRelationQueryBuilder(),
	}
}

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	var rememberToken sql.NullString
	if err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &rememberToken,
		&user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	user.RememberToken = rememberToken.String
	return &user, nil
}

// Create inserts a new user and fills in its ID and timestamps.
func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	now := time.Now().UTC()

	const query = `
INSERT INTO users (name, email, password, remember_token, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`
	id, err := insertID(ctx, repo.db, query,
		user.Name, user.Email, user.Password, nullString(user.RememberToken), now, now,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// Get retrieves a user by ID. Returns nil if not found.
func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE id = ?
LIMIT 1`
	user, err := scanUser(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", db.Classify(err))
	}
	return user, nil
}

func (repo *UserRepo) GetByRelation(ctx context.Context, rel repository.BelongsTo, key int64) (*entity.User, error) {
	query, err := repo.queryBuilder.SelectOwner(rel, userColumns)
	if err != nil {
		return nil, fmt.Errorf("GetByRelation: %w", err)
	}
	user, err := scanUser(repo.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByRelation: %w", db.Classify(err))
	}
	return user, nil
}

// List retrieves all users in insertion order.
func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", db.Classify(err))
	}
	defer func() { _ = rows.Close() }()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", db.Classify(err))
	}
	return users, nil
}

func (repo *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", db.Classify(err))
	}
	return n, nil
}

// Delete removes a user. The connection must have foreign_keys enabled for
// the user's articles to be removed with it.
func (repo *UserRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", db.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
