package postgres

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

type UserRepo struct {
	db           db.Querier
	queryBuilder *RelationQueryBuilder
}

func NewUserRepo(q db.Querier) repository.UserRepository {
	return &UserRepo{
		db:           q,
		queryBuilder: NewRelationQueryBuilder(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
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

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	now := time.Now().UTC()

	const query = `
INSERT INTO users (name, email, password, remember_token, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id`
	id, err := insertReturningID(ctx, repo.db, query,
		user.Name, user.Email, user.Password, nullString(user.RememberToken), now,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
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

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", db.Classify(err))
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 16)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, user)
	}
	return users, db.Classify(rows.Err())
}

func (repo *UserRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`
	var n int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", db.Classify(err))
	}
	return n, nil
}

// Delete removes the user; ON DELETE CASCADE removes the user's articles.
func (repo *UserRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", db.Classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
