// Package config reads typed settings from environment variables.
//
// Every getter returns its default when the variable is unset or empty.
// A malformed value is returned as an error naming the variable, together
// with the default, so callers can collect all problems before failing.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// Example:
//
//	dsn := GetEnvString("DATABASE_URL", "memory://")
func GetEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns the value of an environment variable as an integer.
func GetEnvInt(key string, defaultValue int) (int, error) {
	return getEnv(key, defaultValue, strconv.Atoi)
}

// GetEnvUint64 returns the value of an environment variable as an unsigned integer.
func GetEnvUint64(key string, defaultValue uint64) (uint64, error) {
	return getEnv(key, defaultValue, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

// GetEnvBool returns the value of an environment variable as a boolean.
//
// Accepted values are those of strconv.ParseBool ("1", "t", "true", "0", "f", "false", ...).
func GetEnvBool(key string, defaultValue bool) (bool, error) {
	return getEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvDuration returns the value of an environment variable as a time.Duration.
//
// Example:
//
//	lifetime, err := GetEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour)
func GetEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	return getEnv(key, defaultValue, time.ParseDuration)
}

func getEnv[T any](key string, defaultValue T, parse func(string) (T, error)) (T, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := parse(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: invalid value %q: %w", key, valueStr, err)
	}
	return value, nil
}
