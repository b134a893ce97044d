// Package memory provides in-process implementations of the repository
// interfaces. Data lives for the lifetime of the Store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"blog-seeder/internal/domain/entity"
	"blog-seeder/internal/repository"
)

// Store holds users and articles in slices ordered by ID. It enforces the
// article → user foreign key and cascades user deletes to their articles.
type Store struct {
	mu       sync.RWMutex
	users    []*entity.User
	articles []*entity.Article
	nextUser int64
	nextArt  int64
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) Users() repository.UserRepository { return userRepo{s} }

func (s *Store) Articles() repository.ArticleRepository { return articleRepo{s} }

// userExists must be called with mu held.
func (s *Store) userExists(id int64) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *entity.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextUser++
	now := r.s.now()
	user.ID = r.s.nextUser
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.s.users = append(r.s.users, &stored)
	return nil
}

func (r userRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// GetByRelation looks up by ID; users.id is the only declared owner key.
func (r userRepo) GetByRelation(ctx context.Context, rel repository.BelongsTo, key int64) (*entity.User, error) {
	if err := rel.Check(); err != nil {
		return nil, fmt.Errorf("GetByRelation: %w", err)
	}
	return r.Get(ctx, key)
}

func (r userRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r userRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

func (r userRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := -1
	for i, u := range r.s.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	r.s.users = append(r.s.users[:idx], r.s.users[idx+1:]...)

	// ON DELETE CASCADE
	kept := r.s.articles[:0]
	for _, a := range r.s.articles {
		if a.UserID != id {
			kept = append(kept, a)
		}
	}
	r.s.articles = kept
	return nil
}

type articleRepo struct{ s *Store }

func (r articleRepo) Create(_ context.Context, article *entity.Article) error {
	if err := article.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.userExists(article.UserID) {
		return fmt.Errorf("Create: user_id %d: %w", article.UserID, entity.ErrConstraintViolation)
	}
	r.s.nextArt++
	now := r.s.now()
	article.ID = r.s.nextArt
	article.CreatedAt = now
	article.UpdatedAt = now
	stored := *article
	r.s.articles = append(r.s.articles, &stored)
	return nil
}

func (r articleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.articles {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (r articleRepo) ListByRelation(_ context.Context, rel repository.HasMany, key int64) ([]*entity.Article, error) {
	if err := rel.Check(); err != nil {
		return nil, fmt.Errorf("ListByRelation: %w", err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*entity.Article
	for _, a := range r.s.articles {
		if a.UserID == key {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r articleRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.articles)), nil
}
