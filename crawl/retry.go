package crawl

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts fn with backoff retries after each failure.
// len(delays) is the number of retries; an empty slice means a single
// attempt. Useful for tests that must not wait for real delays.
func fetchWithRetry[T any](ctx context.Context, delays []time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	maxAttempts := len(delays) + 1
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn()
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}
