package main

import (
	"context"
	"fmt"
	"log/slog"

	"blog-seeder/internal/config"
	"blog-seeder/internal/factory"
	"blog-seeder/internal/infra/adapter/persistence/memory"
	pgRepo "blog-seeder/internal/infra/adapter/persistence/postgres"
	liteRepo "blog-seeder/internal/infra/adapter/persistence/sqlite"
	"blog-seeder/internal/infra/db"
	"blog-seeder/internal/infra/hasher"
	"blog-seeder/internal/observability/logging"
	"blog-seeder/internal/observability/metrics"
	"blog-seeder/internal/repository"
	"blog-seeder/internal/resilience/circuitbreaker"
	"blog-seeder/internal/usecase/seed"
	userUC "blog-seeder/internal/usecase/user"
)

// repos is the datastore a run writes to.
type repos struct {
	users    repository.UserRepository
	articles repository.ArticleRepository
	close    func() error

	// breaker is nil for the in-memory store.
	breaker *circuitbreaker.DBCircuitBreaker
}

// logBreakerState reports the datastore circuit state after a failed run.
func (r *repos) logBreakerState(ctx context.Context) {
	if r.breaker == nil {
		return
	}
	level := slog.LevelInfo
	if r.breaker.IsOpen() {
		level = slog.LevelWarn
	}
	logging.FromContext(ctx).Log(ctx, level, "datastore circuit breaker state",
		slog.String("state", r.breaker.State().String()))
}

// openRepos connects to the datastore named by cfg.DatabaseURL, applies the
// schema when cfg.Migrate is set, and builds repositories on top of a
// circuit breaker.
func openRepos(ctx context.Context, cfg *config.SeedConfig) (*repos, error) {
	logger := logging.FromContext(ctx)

	dialect, dsn, err := db.ParseURL(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if dialect == db.DialectMemory {
		logger.Info("using in-memory datastore; records are discarded on exit")
		store := memory.NewStore()
		return &repos{
			users:    store.Users(),
			articles: store.Articles(),
			close:    func() error { return nil },
		}, nil
	}

	conn, err := db.Open(ctx, dialect, dsn, cfg.DB)
	if err != nil {
		return nil, err
	}
	breaker := circuitbreaker.NewDBCircuitBreaker(conn)

	if cfg.Migrate {
		if err := db.MigrateUp(ctx, breaker, dialect); err != nil {
			_ = conn.Close()
			return nil, err
		}
		logger.Info("schema migrated", slog.String("dialect", string(dialect)))
	}

	r := &repos{close: conn.Close, breaker: breaker}
	switch dialect {
	case db.DialectPostgres:
		r.users = pgRepo.NewUserRepo(breaker)
		r.articles = pgRepo.NewArticleRepo(breaker)
	case db.DialectSQLite:
		r.users = liteRepo.NewUserRepo(breaker)
		r.articles = liteRepo.NewArticleRepo(breaker)
	}
	return r, nil
}

// run wires one seed run from configuration and executes it.
func run(ctx context.Context, cfg *config.SeedConfig, m *metrics.Seed) (seed.Result, error) {
	logger := logging.FromContext(ctx)

	r, err := openRepos(ctx, cfg)
	if err != nil {
		return seed.Result{}, fmt.Errorf("open datastore: %w", err)
	}
	defer func() {
		if err := r.close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	return seedRepos(ctx, cfg, r, m)
}

// seedRepos runs the seeder against already opened repositories.
func seedRepos(ctx context.Context, cfg *config.SeedConfig, r *repos, m *metrics.Seed) (seed.Result, error) {
	h, err := hasher.NewBcrypt(cfg.BcryptCost)
	if err != nil {
		return seed.Result{}, err
	}

	svc := &seed.Service{
		Factory: factory.New(cfg.RandomSeed, factory.DefaultRegistry()),
		Users:   &userUC.Service{UserRepo: r.users, ArticleRepo: r.articles},
		Hasher:  h,
		Metrics: m,
	}
	res, err := svc.Run(ctx)
	if err != nil {
		r.logBreakerState(ctx)
	}
	return res, err
}
