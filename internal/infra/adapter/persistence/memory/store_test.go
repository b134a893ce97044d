package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-seeder/internal/domain/entity"
	"blog-seeder/internal/repository"
)

func newUser(name string) *entity.User {
	return &entity.User{Name: name, Email: name + "@example.com", Password: "secret"}
}

func TestStore_AssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		u := newUser("u")
		require.NoError(t, s.Users().Create(ctx, u))
		assert.Equal(t, i, u.ID)
		assert.False(t, u.CreatedAt.IsZero())
	}
	for i := int64(1); i <= 4; i++ {
		a := &entity.Article{UserID: 1, Title: "t"}
		require.NoError(t, s.Articles().Create(ctx, a))
		assert.Equal(t, i, a.ID)
	}
}

func TestStore_ArticleRequiresExistingUser(t *testing.T) {
	s := NewStore()
	err := s.Articles().Create(context.Background(), &entity.Article{UserID: 1, Title: "orphan"})
	assert.ErrorIs(t, err, entity.ErrConstraintViolation)

	n, _ := s.Articles().Count(context.Background())
	assert.Zero(t, n)
}

func TestStore_ListByRelation(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a, b := newUser("a"), newUser("b")
	require.NoError(t, s.Users().Create(ctx, a))
	require.NoError(t, s.Users().Create(ctx, b))

	for _, owner := range []int64{a.ID, b.ID, a.ID, a.ID} {
		require.NoError(t, s.Articles().Create(ctx, &entity.Article{UserID: owner, Title: "t"}))
	}

	got, err := s.Articles().ListByRelation(ctx, repository.UserArticles, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 3, 4}, []int64{got[0].ID, got[1].ID, got[2].ID})

	_, err = s.Articles().ListByRelation(ctx, repository.HasMany{Table: "x"}, a.ID)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestStore_GetByRelation(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := newUser("owner")
	require.NoError(t, s.Users().Create(ctx, u))

	got, err := s.Users().GetByRelation(ctx, repository.ArticleOwner, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", got.Name)

	got, err = s.Users().GetByRelation(ctx, repository.ArticleOwner, 99)
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = s.Users().GetByRelation(ctx, repository.BelongsTo{}, u.ID)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestStore_DeleteCascades(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a, b := newUser("a"), newUser("b")
	require.NoError(t, s.Users().Create(ctx, a))
	require.NoError(t, s.Users().Create(ctx, b))
	require.NoError(t, s.Articles().Create(ctx, &entity.Article{UserID: a.ID, Title: "a1"}))
	require.NoError(t, s.Articles().Create(ctx, &entity.Article{UserID: b.ID, Title: "b1"}))

	require.NoError(t, s.Users().Delete(ctx, a.ID))

	users, _ := s.Users().Count(ctx)
	articles, _ := s.Articles().Count(ctx)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), articles)

	assert.ErrorIs(t, s.Users().Delete(ctx, a.ID), entity.ErrNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := newUser("a")
	require.NoError(t, s.Users().Create(ctx, u))
	u.Name = "changed"

	got, err := s.Users().Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	missing, err := s.Users().Get(ctx, 99)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_ConcurrentCreate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Users().Create(ctx, newUser("c"))
		}()
	}
	wg.Wait()

	users, err := s.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 50)
	seen := make(map[int64]bool)
	for _, u := range users {
		assert.False(t, seen[u.ID])
		seen[u.ID] = true
	}
}
