package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a new structured logger with JSON output on stdout.
// Supported levels: debug, info, warn, error
// Default level: info
func NewLogger(level string) *slog.Logger {
	return newJSONLogger(os.Stdout, level)
}

func newJSONLogger(w io.Writer, level string) *slog.Logger {
	logLevel := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		// ソース位置は debug 時のみ付与
		AddSource: logLevel <= slog.LevelDebug,
	})
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level. Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRunID returns a context whose logger carries the seed run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(slog.String("run_id", runID)))
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
