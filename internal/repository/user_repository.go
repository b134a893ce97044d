package repository

import (
	"context"

	"blog-seeder/internal/domain/entity"
)

type UserRepository interface {
	// Create inserts the user and assigns its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
	// Get returns (nil, nil) if no user has the given ID.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByRelation returns the owner on the one side of rel whose owner key
	// equals key, or (nil, nil) if there is none.
	GetByRelation(ctx context.Context, rel BelongsTo, key int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	// Delete removes the user. Articles owned by the user are removed with it.
	Delete(ctx context.Context, id int64) error
}
