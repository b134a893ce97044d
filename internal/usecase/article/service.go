package article

import (
	"context"
	"fmt"

	"blog-seeder/internal/domain/entity"
	"blog-seeder/internal/repository"
)

// Service provides article use cases, including the Article N:1 User relation.
type Service struct {
	ArticleRepo repository.ArticleRepository
	UserRepo    repository.UserRepository
}

// Get returns the article with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	a, err := s.ArticleRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

// Owner returns the user a belongs to. A dangling user_id yields
// entity.ErrNotFound.
func (s *Service) Owner(ctx context.Context, a *entity.Article) (*entity.User, error) {
	u, err := s.UserRepo.GetByRelation(ctx, repository.ArticleOwner, a.UserID)
	if err != nil {
		return nil, fmt.Errorf("owner of article %d: %w", a.ID, err)
	}
	if u == nil {
		return nil, fmt.Errorf("owner of article %d: %s %d: %w",
			a.ID, repository.ArticleOwner.Table, a.UserID, entity.ErrNotFound)
	}
	return u, nil
}
