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

const articleColumns = `id, user_id, title, content, status, created_at, updated_at`

type ArticleRepo struct {
	db           db.Querier
	queryBuilder *RelationQueryBuilder
}

func NewArticleRepo(q db.Querier) repository.ArticleRepository {
	return &ArticleRepo{
		db:           q,
		queryBuilder: NewRelationQueryBuilder(),
	}
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var article entity.Article
	if err := row.Scan(
		&article.ID, &article.UserID, &article.Title, &article.Content, &article.Status,
		&article.CreatedAt, &article.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &article, nil
}

// Create inserts the article. A user_id with no matching user is rejected by
// the foreign key and surfaces as entity.ErrConstraintViolation.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if err := article.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	now := time.Now().UTC()

	const query = `
INSERT INTO articles (user_id, title, content, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id`
	id, err := insertReturningID(ctx, repo.db, query,
		article.UserID, article.Title, article.Content, article.Status, now,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	article.ID = id
	article.CreatedAt = now
	article.UpdatedAt = now
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", db.Classify(err))
	}
	return article, nil
}

func (repo *ArticleRepo) ListByRelation(ctx context.Context, rel repository.HasMany, key int64) ([]*entity.Article, error) {
	query, err := repo.queryBuilder.SelectMany(rel, articleColumns)
	if err != nil {
		return nil, fmt.Errorf("ListByRelation: %w", err)
	}
	rows, err := repo.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("ListByRelation: %w", db.Classify(err))
	}
	defer func() { _ = rows.Close() }()

	// パフォーマンス最適化: 1ユーザーあたりの記事数は少ないため小さめに事前割り当て
	articles := make([]*entity.Article, 0, 8)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByRelation: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, db.Classify(rows.Err())
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var n int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", db.Classify(err))
	}
	return n, nil
}
