// Package tracing provides OpenTelemetry tracing integration.
//
// The seeder opens one span per run and one child span per persisted record.
// cmd/seed installs an SDK provider with NewProvider; without it the global
// no-op provider is used and spans cost nothing.
//
// Example usage:
//
//	tp := tracing.NewProvider()
//	defer func() { _ = tp.Shutdown(context.Background()) }()
//
//	ctx, span := tracing.GetTracer().Start(ctx, "seed.run")
//	defer span.End()
package tracing
