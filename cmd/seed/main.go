// Command seed fills the datastore named by DATABASE_URL with 3 sample users
// and 5 articles for each of them. Every run appends new records.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"blog-seeder/internal/config"
	"blog-seeder/internal/observability/logging"
	"blog-seeder/internal/observability/metrics"
	"blog-seeder/internal/observability/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(realMain())
}

func realMain() int {
	configPath := flag.String("config", "", "optional YAML config file; environment variables take precedence")
	envFile := flag.String("env-file", ".env", "dotenv file loaded into the environment if present")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		slog.Error("failed to load env file", slog.Any("error", err))
		return 1
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		return 1
	}
	logger := initLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	tp := tracing.NewProvider()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	reg := prometheus.NewRegistry()
	seedMetrics := metrics.NewSeed(reg)

	res, runErr := run(ctx, cfg, seedMetrics)

	if cfg.PushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := metrics.Push(pushCtx, cfg.PushgatewayURL, "blog_seeder", reg); err != nil {
			logger.Warn("failed to push metrics", slog.Any("error", err))
		}
		cancel()
	}

	if runErr != nil {
		logger.Error("seed failed",
			slog.String("run_id", res.RunID),
			slog.Any("error", runErr))
		return 1
	}
	logger.Info("seed finished",
		slog.String("run_id", res.RunID),
		slog.Any("user_ids", res.UserIDs),
		slog.Int("articles", len(res.ArticleIDs)),
		slog.Duration("duration", res.Duration))
	return 0
}

func initLogger(level string) *slog.Logger {
	logger := logging.NewLogger(level)
	slog.SetDefault(logger)
	return logger
}
