// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"

	"blog-seeder/internal/repository"
)

// RelationQueryBuilder builds relationship traversal queries in PostgreSQL.
// Column and table names come from repository relation descriptors, which are
// checked against the declared set before any SQL is produced.
type RelationQueryBuilder struct{}

// NewRelationQueryBuilder creates a new query builder instance.
func NewRelationQueryBuilder() *RelationQueryBuilder {
	return &RelationQueryBuilder{}
}

// SelectMany builds the query listing the many side of rel for one owner key.
// PostgreSQL-specific: uses the $1 placeholder.
func (qb *RelationQueryBuilder) SelectMany(rel repository.HasMany, columns string) (string, error) {
	if err := rel.Check(); err != nil {
		return "", err
	}
	return fmt.Sprintf(`
SELECT %s
FROM %s
WHERE %s = $1
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
WHERE %s = $1
LIMIT 1`, columns, rel.Table, rel.OwnerKey), nil
}
