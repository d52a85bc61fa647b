package ingest

import (
	"context"
	"sync"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
	"golang.org/x/time/rate"
)

var _ cmdlib.HostLimiter = (*HostRateLimiter)(nil)

// HostRateLimiter provides per-host rate limiting using token buckets. It
// creates a separate rate limiter for each host, allowing concurrent
// requests to different hosts while enforcing rate limits within each host.
type HostRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostRateLimiter creates a new HostRateLimiter with the specified
// requests per second limit. Each host gets its own limiter with a burst of
// 1 (no bursting allowed).
func NewHostRateLimiter(rps float64) *HostRateLimiter {
	return &HostRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the host. Returns an
// error if the context is canceled before the wait completes.
func (l *HostRateLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
