// Package config loads the settings of a seed run.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"blog-seeder/internal/infra/db"
	pkgconfig "blog-seeder/pkg/config"
)

// SeedConfig holds everything cmd/seed needs to run.
type SeedConfig struct {
	DatabaseURL    string `yaml:"database_url"`
	Migrate        bool   `yaml:"migrate"`
	RandomSeed     uint64 `yaml:"random_seed"`
	BcryptCost     int    `yaml:"bcrypt_cost"`
	LogLevel       string `yaml:"log_level"`
	PushgatewayURL string `yaml:"pushgateway_url"`

	DB db.ConnectionConfig `yaml:"-"`
}

// DefaultSeedConfig returns the settings used when nothing is configured.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Migrate:    true,
		BcryptCost: bcrypt.DefaultCost,
		LogLevel:   "info",
		DB:         db.DefaultConnectionConfig(),
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables, each layer
// overriding the previous one.
func Load(path string) (*SeedConfig, error) {
	cfg := DefaultSeedConfig()

	if path != "" {
		// #nosec G304 -- path is provided by the operator on the command line
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var errs []error
	cfg.DatabaseURL = pkgconfig.GetEnvString("DATABASE_URL", cfg.DatabaseURL)
	cfg.Migrate = readEnv(&errs, pkgconfig.GetEnvBool, "DB_MIGRATE", cfg.Migrate)
	cfg.RandomSeed = readEnv(&errs, pkgconfig.GetEnvUint64, "SEED_RANDOM_SEED", cfg.RandomSeed)
	cfg.BcryptCost = readEnv(&errs, pkgconfig.GetEnvInt, "BCRYPT_COST", cfg.BcryptCost)
	cfg.LogLevel = pkgconfig.GetEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.PushgatewayURL = pkgconfig.GetEnvString("METRICS_PUSHGATEWAY_URL", cfg.PushgatewayURL)

	cfg.DB.MaxOpenConns = readEnv(&errs, pkgconfig.GetEnvInt, "DB_MAX_OPEN_CONNS", cfg.DB.MaxOpenConns)
	cfg.DB.MaxIdleConns = readEnv(&errs, pkgconfig.GetEnvInt, "DB_MAX_IDLE_CONNS", cfg.DB.MaxIdleConns)
	cfg.DB.ConnMaxLifetime = readEnv(&errs, pkgconfig.GetEnvDuration, "DB_CONN_MAX_LIFETIME", cfg.DB.ConnMaxLifetime)
	cfg.DB.ConnMaxIdleTime = readEnv(&errs, pkgconfig.GetEnvDuration, "DB_CONN_MAX_IDLE_TIME", cfg.DB.ConnMaxIdleTime)

	// 不正な値はデフォルトで黙って置き換えず、まとめて報告する
	errs = append(errs, cfg.Validate())
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// readEnv reads key with get, recording a malformed value in errs.
func readEnv[T any](errs *[]error, get func(string, T) (T, error), key string, def T) T {
	v, err := get(key, def)
	if err != nil {
		*errs = append(*errs, err)
	}
	return v
}

// Validate reports every invalid setting at once.
func (c *SeedConfig) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	} else if _, _, err := db.ParseURL(c.DatabaseURL); err != nil {
		errs = append(errs, fmt.Errorf("DATABASE_URL: %w", err))
	}
	if err := pkgconfig.ValidateIntRange(c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost); err != nil {
		errs = append(errs, fmt.Errorf("BCRYPT_COST: %w", err))
	}
	if err := pkgconfig.ValidateIntRange(c.DB.MaxOpenConns, 1, math.MaxInt32); err != nil {
		errs = append(errs, fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err))
	}
	if err := pkgconfig.ValidateIntRange(c.DB.MaxIdleConns, 0, c.DB.MaxOpenConns); err != nil {
		errs = append(errs, fmt.Errorf("DB_MAX_IDLE_CONNS: %w", err))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.DB.ConnMaxLifetime); err != nil {
		errs = append(errs, fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.DB.ConnMaxIdleTime); err != nil {
		errs = append(errs, fmt.Errorf("DB_CONN_MAX_IDLE_TIME: %w", err))
	}
	return errors.Join(errs...)
}
