package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sony/gobreaker"
)

// retryTranslator decorates a Translator with exponential backoff and a
// circuit breaker. Batch size mismatches count as failures and are
// retried like any API error.
type retryTranslator struct {
	inner           Translator
	maxAttempts     int
	breaker         *gobreaker.CircuitBreaker
	initialInterval time.Duration
}

// WithRetry wraps a translator so each batch is attempted up to
// maxAttempts times with exponential backoff and jitter. Consecutive
// failures trip a circuit breaker that fails fast until the upstream
// recovers.
func WithRetry(inner Translator, maxAttempts int) Translator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &retryTranslator{
		inner:           inner,
		maxAttempts:     maxAttempts,
		breaker:         breaker,
		initialInterval: time.Second,
	}
}

// TranslateBatch retries the wrapped translator until it succeeds or the
// attempt budget is exhausted.
func (r *retryTranslator) TranslateBatch(ctx context.Context, lines []string) ([]string, error) {
	var out []string

	op := func() error {
		result, err := r.breaker.Execute(func() (interface{}, error) {
			return r.inner.TranslateBatch(ctx, lines)
		})
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		out, _ = result.([]string)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval
	bo.Multiplier = 2
	bo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("translation failed after %d attempts: %w", r.maxAttempts, err)
	}

	return out, nil
}

// Name returns the wrapped provider name
func (r *retryTranslator) Name() string {
	return r.inner.Name()
}

// IsAvailable checks the wrapped provider
func (r *retryTranslator) IsAvailable() error {
	return r.inner.IsAvailable()
}
