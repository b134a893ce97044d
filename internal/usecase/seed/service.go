package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"blog-seeder/internal/domain/entity"
	"blog-seeder/internal/factory"
	"blog-seeder/internal/observability/logging"
	"blog-seeder/internal/observability/metrics"
	"blog-seeder/internal/observability/tracing"
	userUC "blog-seeder/internal/usecase/user"
)

const (
	UsersPerRun     = 3
	ArticlesPerUser = 5
)

// Hasher turns a generated plaintext password into its stored form.
type Hasher interface {
	Hash(plain string) (string, error)
}

// Result summarizes a run. On failure it lists what was persisted before
// the run stopped.
type Result struct {
	RunID      string
	UserIDs    []int64
	ArticleIDs []int64
	Duration   time.Duration
}

// Service runs the seeding procedure: UsersPerRun users, then
// ArticlesPerUser articles for each of them attached through the user
// relation. Runs are not idempotent; every run appends new records.
type Service struct {
	Factory *factory.Factory
	Users   *userUC.Service

	// Hasher is optional; without one passwords are stored as generated.
	Hasher Hasher
	// Metrics is optional.
	Metrics *metrics.Seed
	// Tracer defaults to the global tracer.
	Tracer trace.Tracer
}

// Run seeds the datastore once. The first error stops the run and is
// returned wrapped in ErrAborted; nothing is rolled back.
func (s *Service) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{
		RunID:      uuid.NewString(),
		UserIDs:    make([]int64, 0, UsersPerRun),
		ArticleIDs: make([]int64, 0, UsersPerRun*ArticlesPerUser),
	}

	ctx = logging.WithRunID(ctx, res.RunID)
	logger := logging.FromContext(ctx)

	ctx, span := s.tracer().Start(ctx, "seed.run", trace.WithAttributes(
		attribute.String("seed.run_id", res.RunID),
	))
	defer span.End()

	logger.Info("seeding started",
		slog.Int("users", UsersPerRun),
		slog.Int("articles_per_user", ArticlesPerUser))

	err := s.run(ctx, &res)
	res.Duration = time.Since(start)
	s.Metrics.RecordRun(err == nil, res.Duration)
	span.SetAttributes(
		attribute.Int("seed.users_created", len(res.UserIDs)),
		attribute.Int("seed.articles_created", len(res.ArticleIDs)),
	)

	if err != nil {
		tracing.Fail(span, err)
		logger.Error("seeding aborted",
			slog.Int("users_created", len(res.UserIDs)),
			slog.Int("articles_created", len(res.ArticleIDs)),
			slog.Duration("duration", res.Duration),
			slog.Any("error", err))
		return res, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	logger.Info("seeding completed",
		slog.Int("users_created", len(res.UserIDs)),
		slog.Int("articles_created", len(res.ArticleIDs)),
		slog.Duration("duration", res.Duration))
	return res, nil
}

func (s *Service) run(ctx context.Context, res *Result) error {
	users := make([]*entity.User, 0, UsersPerRun)
	for i := 0; i < UsersPerRun; i++ {
		u, err := s.createUser(ctx)
		if err != nil {
			return err
		}
		users = append(users, u)
		res.UserIDs = append(res.UserIDs, u.ID)
	}

	for _, u := range users {
		for j := 0; j < ArticlesPerUser; j++ {
			a, err := s.createArticle(ctx, u)
			if err != nil {
				return err
			}
			res.ArticleIDs = append(res.ArticleIDs, a.ID)
		}
	}
	return nil
}

func (s *Service) createUser(ctx context.Context) (*entity.User, error) {
	ctx, span := s.tracer().Start(ctx, "seed.user")
	defer span.End()

	u, err := s.Factory.User(nil)
	if err != nil {
		tracing.Fail(span, err)
		return nil, fmt.Errorf("make user: %w", err)
	}
	if s.Hasher != nil {
		hash, err := s.Hasher.Hash(u.Password)
		if err != nil {
			tracing.Fail(span, err)
			return nil, fmt.Errorf("make user: %w", err)
		}
		u.Password = hash
	}

	start := time.Now()
	if err := s.Users.Create(ctx, u); err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	s.Metrics.RecordCreated(entity.KindUser, time.Since(start))
	span.SetAttributes(attribute.Int64("user.id", u.ID))

	logging.FromContext(ctx).Debug("user created", slog.Int64("user_id", u.ID))
	return u, nil
}

func (s *Service) createArticle(ctx context.Context, u *entity.User) (*entity.Article, error) {
	ctx, span := s.tracer().Start(ctx, "seed.article", trace.WithAttributes(
		attribute.Int64("user.id", u.ID),
	))
	defer span.End()

	a, err := s.Factory.Article(nil)
	if err != nil {
		tracing.Fail(span, err)
		return nil, fmt.Errorf("make article: %w", err)
	}

	start := time.Now()
	if err := s.Users.SaveArticle(ctx, u, a); err != nil {
		tracing.Fail(span, err)
		return nil, err
	}
	s.Metrics.RecordCreated(entity.KindArticle, time.Since(start))
	span.SetAttributes(attribute.Int64("article.id", a.ID))

	logging.FromContext(ctx).Debug("article created",
		slog.Int64("user_id", u.ID),
		slog.Int64("article_id", a.ID))
	return a, nil
}

func (s *Service) tracer() trace.Tracer {
	if s.Tracer != nil {
		return s.Tracer
	}
	return tracing.GetTracer()
}
