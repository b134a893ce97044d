// Package resilience provides fault isolation for the datastore connection.
//
// The circuitbreaker subpackage wraps the database pool with
// github.com/sony/gobreaker so that a seed run against an unreachable
// database fails fast with entity.ErrStoreUnavailable instead of waiting on
// every statement. Nothing here retries: a failed statement is returned to
// the caller as-is.
//
// Usage Example:
//
//	guarded := circuitbreaker.NewDBCircuitBreaker(sqlDB)
//	users := postgres.NewUserRepo(guarded)
package resilience
