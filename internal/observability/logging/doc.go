// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON output on stdout
//   - Seed run ID propagation
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	logger := logging.NewLogger("info")
//	slog.SetDefault(logger)
//
//	ctx = logging.WithRunID(ctx, runID)
//	logging.FromContext(ctx).Info("seeding started")
package logging
