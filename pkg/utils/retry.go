package utils

import (
	"context"
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// Retry calls fn until it succeeds or attempts run out. Errors matching one of
// stop are returned immediately.
func Retry(cfg RetryConfig, fn func() error, stop ...error) error {
	return RetryContext(context.Background(), cfg, fn, stop...)
}

// RetryContext is Retry that gives up waiting between attempts once ctx is done.
// Cancellation errors returned by fn are never retried.
func RetryContext(ctx context.Context, cfg RetryConfig, fn func() error, stop ...error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}

	stop = append(stop[:len(stop):len(stop)], context.Canceled, context.DeadlineExceeded)
	delay := cfg.InitialDelay

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		for _, target := range stop {
			if errors.Is(err, target) {
				return err
			}
		}

		if attempt == cfg.MaxAttempts {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}
