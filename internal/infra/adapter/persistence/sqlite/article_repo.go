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

const articleColumns = `id, user_id, title, content, status, created_at, updated_at`

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct {
	db           db.Querier
	queryBuilder *RelationQueryBuilder
}

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(q db.Querier) repository.ArticleRepository {
	return &ArticleRepo{db: q, queryBuilder: NewRelationQueryBuilder()}
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

// Create inserts a new article and fills in its ID and timestamps.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	if err := article.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	now := time.Now().UTC()

	const query = `
INSERT INTO articles (user_id, title, content, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`
	id, err := insertID(ctx, repo.db, query,
		article.UserID, article.Title, article.Content, article.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	article.ID = id
	article.CreatedAt = now
	article.UpdatedAt = now
	return nil
}

// Get retrieves an article by ID. Returns nil if not found.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = ?
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

// ListByRelation retrieves the articles on the many side of rel.
func (repo *ArticleRepo) ListByRelation(ctx context.Context, rel repository.HasMany, key int64) ([]*entity.Article, error) {
	query, err := repo.queryBuilder.SelectMany(rel, articleColumns)
	if err != nil {
		return nil, fmt.Errorf("ListByRelation: %w", err)
	}
	rows, err := repo.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("ListByRelation: QueryContext: %w", db.Classify(err))
	}
	defer func() { _ = rows.Close() }()

	var articles []*entity.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByRelation: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByRelation: rows.Err: %w", db.Classify(err))
	}
	return articles, nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", db.Classify(err))
	}
	return n, nil
}
