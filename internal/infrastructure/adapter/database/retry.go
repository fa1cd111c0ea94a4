package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError runs operation once and retries it up to MaxRetries
// more times while it keeps failing with a transient error.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func(ctx context.Context) error,
	logger coreport.Logger,
) error {
	attempt := 0
	err := backoff.RetryNotify(func() error {
		err := operation(ctx)
		if err != nil && !IsTransientError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, newBackOff(ctx, config), func(err error, next time.Duration) {
		attempt++
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": next.String(),
		})
	})

	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		logger.Warn("Retry operation canceled by context", map[string]any{
			"attempts": attempt + 1,
			"error":    err.Error(),
		})
	case config.MaxRetries > 0 && IsTransientError(err):
		logger.Error("All retry attempts failed", map[string]any{
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
		})
	}

	return err
}

// newBackOff builds an exponential policy doubling from RetryInterval up to
// MaxInterval, bounded by MaxRetries and ctx.
func newBackOff(ctx context.Context, config RetryConfig) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = config.RetryInterval
	exp.Multiplier = 2
	exp.RandomizationFactor = config.JitterFactor
	if config.MaxInterval > 0 {
		exp.MaxInterval = config.MaxInterval
	}
	exp.MaxElapsedTime = 0
	exp.Reset()

	retries := uint64(0)
	if config.MaxRetries > 0 {
		retries = uint64(config.MaxRetries)
	}

	return backoff.WithContext(backoff.WithMaxRetries(exp, retries), ctx)
}

// IsTransientError checks if an error is transient and can be retried
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "the database system is starting up") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.HasSuffix(errMsg, "eof")
}
