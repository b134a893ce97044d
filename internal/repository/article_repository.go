package repository

import (
	"context"

	"blog-seeder/internal/domain/entity"
)

type ArticleRepository interface {
	// Create inserts the article and assigns its ID and timestamps.
	// The article's UserID must reference an existing user.
	Create(ctx context.Context, article *entity.Article) error
	// Get returns (nil, nil) if no article has the given ID.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// ListByRelation returns the articles on the many side of rel whose
	// foreign key equals key, ordered by ID.
	ListByRelation(ctx context.Context, rel HasMany, key int64) ([]*entity.Article, error)
	Count(ctx context.Context) (int64, error)
}
