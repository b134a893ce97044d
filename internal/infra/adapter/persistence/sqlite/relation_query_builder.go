// Package sqlite provides SQLite implementations of repository interfaces.
package sqlite

import (
	"fmt"

	"blog-seeder/internal/repository"
)

// RelationQueryBuilder builds relationship traversal queries in SQLite syntax.
type RelationQueryBuilder struct{}

func NewRelationQueryBuilder() *RelationQueryBuilder {
	return &RelationQueryBuilder{}
}

// SelectMany builds the query listing the many side of rel for one owner key.
// SQLite-specific: uses the ? placeholder.
func (qb *RelationQueryBuilder) SelectMany(rel repository.HasMany, columns string) (string, error) {
	if err := rel.Check(); err != nil {
		return "", err
	}
	return fmt.Sprintf(`
SELECT %s
FROM %s
WHERE %s = ?
ORDER BY id ASC`, columns, rel.Table, rel.ForeignKey), nil
}

// SelectOwner builds the query fetching the owner row of rel for one foreign key value.
func (qb *RelationQueryBuilder) SelectOwner(rel repository.BelongsTo, columns string) (string, error) {
	if err := rel.Check(); err != nil {
		return "", err
	}
	return fmt.Sprintf(`
SELECT %s
FROM %s
WHERE %s = ?
LIMIT 1`, columns, rel.Table, rel.OwnerKey), nil
}
