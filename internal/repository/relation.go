// Package repository declares the persistence ports for users and articles
// and the relation descriptors used to traverse between them.
package repository

import (
	"fmt"

	"blog-seeder/internal/domain/entity"
)

// HasMany describes a one-to-many relation: rows of Table whose ForeignKey
// column equals the owner's LocalKey.
type HasMany struct {
	Owner      entity.Kind
	Table      string
	ForeignKey string
	LocalKey   string
}

// BelongsTo is the inverse side of a HasMany relation: the row of Table whose
// OwnerKey column equals the child's ForeignKey value.
type BelongsTo struct {
	Table      string
	ForeignKey string
	OwnerKey   string
}

// UserArticles is the User 1:N Article relation.
var UserArticles = HasMany{
	Owner:      entity.KindUser,
	Table:      entity.KindArticle.Table(),
	ForeignKey: "user_id",
	LocalKey:   "id",
}

// ArticleOwner is the Article N:1 User relation.
var ArticleOwner = BelongsTo{
	Table:      entity.KindUser.Table(),
	ForeignKey: "user_id",
	OwnerKey:   "id",
}

// knownRelations is the closed set of relations adapters will build SQL for.
// Relation fields end up in query text, so nothing outside this set is accepted.
var knownRelations = map[HasMany]struct{}{
	UserArticles: {},
}

var knownOwners = map[BelongsTo]struct{}{
	ArticleOwner: {},
}

// Check returns ErrInvalidInput unless rel is a declared relation.
func (rel HasMany) Check() error {
	if _, ok := knownRelations[rel]; !ok {
		return fmt.Errorf("relation %s.%s: %w", rel.Table, rel.ForeignKey, entity.ErrInvalidInput)
	}
	return nil
}

// Check returns ErrInvalidInput unless rel is a declared relation.
func (rel BelongsTo) Check() error {
	if _, ok := knownOwners[rel]; !ok {
		return fmt.Errorf("relation %s.%s: %w", rel.Table, rel.OwnerKey, entity.ErrInvalidInput)
	}
	return nil
}
