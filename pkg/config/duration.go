package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration validates that a duration is greater than zero.
//
// Example:
//
//	if err := ValidatePositiveDuration(cfg.ConnMaxLifetime); err != nil {
//	    return fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateIntRange validates that n is within [min, max].
func ValidateIntRange(n, min, max int) error {
	if n < min || n > max {
		return fmt.Errorf("value must be between %d and %d, got %d", min, max, n)
	}
	return nil
}
