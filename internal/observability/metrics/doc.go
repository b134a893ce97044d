// Package metrics provides the Prometheus metrics recorded by the seeder.
//
// Metrics are registered on a caller supplied registry so tests can use an
// isolated prometheus.NewRegistry(). Because the seeder exits as soon as it
// finishes, metrics are delivered with Push rather than scraped.
//
// Example usage:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.NewSeed(reg)
//	m.RecordCreated(entity.KindUser, elapsed)
//	_ = metrics.Push(ctx, "http://pushgateway:9091", "blog_seeder", reg)
package metrics
