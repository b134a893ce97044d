package user

import (
	"context"
	"fmt"

	"blog-seeder/internal/domain/entity"
	"blog-seeder/internal/repository"
)

// Service provides user management use cases, including the User 1:N Article
// relation.
type Service struct {
	UserRepo    repository.UserRepository
	ArticleRepo repository.ArticleRepository
}

// Create persists a new user.
func (s *Service) Create(ctx context.Context, u *entity.User) error {
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Articles returns the articles owned by u in insertion order.
func (s *Service) Articles(ctx context.Context, u *entity.User) ([]*entity.Article, error) {
	if u.ID <= 0 {
		return nil, ErrUnsavedUser
	}
	articles, err := s.ArticleRepo.ListByRelation(ctx, repository.UserArticles, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list articles of user %d: %w", u.ID, err)
	}
	return articles, nil
}

// SaveArticle attaches a to u and persists it. Any user_id already on a is
// replaced. On success a carries its new ID.
func (s *Service) SaveArticle(ctx context.Context, u *entity.User, a *entity.Article) error {
	a.UserID = u.ID
	if err := s.ArticleRepo.Create(ctx, a); err != nil {
		return fmt.Errorf("save article for user %d: %w", u.ID, err)
	}
	return nil
}

// Delete removes the user together with the user's articles.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.UserRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
