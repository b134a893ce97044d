// Package observability groups the logging, metrics and tracing used by a
// seed run.
//
// Subpackages:
//   - logging: slog JSON logger with the run ID carried in the context
//   - metrics: Prometheus counters and histograms for created records and runs
//   - tracing: OpenTelemetry provider setup and span helpers
//
// Example usage:
//
//	import (
//	    "blog-seeder/internal/observability/logging"
//	    "blog-seeder/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger("info")
//	    logger.Info("seeder started")
//
//	    m := metrics.NewSeed(prometheus.NewRegistry())
//	    m.RecordCreated(entity.KindUser, elapsed)
//	}
package observability
