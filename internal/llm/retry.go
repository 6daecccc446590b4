package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		MaxWait:     2 * time.Second,
		Multiplier:  2,
	}
}

// Retry calls op until it returns a value that validate accepts, up to
// cfg.MaxAttempts times. A nil validate accepts everything. Context
// cancellation stops it immediately; otherwise the last error is returned.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(context.Context) (T, error), validate func(T) error) (T, error) {
	var (
		zero    T
		lastErr error
	)

	attempts := max(cfg.MaxAttempts, 1)
	for attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		v, err := op(ctx)
		if err == nil && validate != nil {
			err = validate(v)
		}
		if err == nil {
			return v, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return zero, err
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}

		wait := backoff(cfg, attempt)
		if wait <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}

	return zero, lastErr
}

func backoff(cfg RetryConfig, attempt int) time.Duration {
	if cfg.InitialWait <= 0 {
		return 0
	}

	multiplier := cfg.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	wait := float64(cfg.InitialWait) * math.Pow(multiplier, float64(attempt))
	if cfg.MaxWait > 0 && wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	// ±20% jitter
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
