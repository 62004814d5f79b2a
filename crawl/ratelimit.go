package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/rsearch"
	"golang.org/x/time/rate"
)

var _ rsearch.SiteLimiter = (*SiteLimiter)(nil)

// SiteLimiter provides per-site rate limiting using token buckets.
// Each site gets its own limiter, allowing concurrent requests to
// different sites while enforcing politeness within each site.
type SiteLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewSiteLimiter creates a SiteLimiter with the given requests-per-second
// limit. Each site gets a burst of 1 (no bursting).
func NewSiteLimiter(rps float64) *SiteLimiter {
	return &SiteLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the site.
// Returns an error if the context is canceled before the wait completes.
func (l *SiteLimiter) Wait(ctx context.Context, site string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[site]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[site] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
