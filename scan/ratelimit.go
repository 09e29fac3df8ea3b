package scan

import (
	"context"

	"golang.org/x/time/rate"
)

// SuggestLimiter throttles suggestion requests using a token bucket, so a
// scan with many issues does not flood a local model server.
type SuggestLimiter struct {
	limiter *rate.Limiter
}

// NewSuggestLimiter creates a new SuggestLimiter with the specified requests
// per second limit and a burst of 1 (no bursting allowed).
func NewSuggestLimiter(rps float64) *SuggestLimiter {
	return &SuggestLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limit allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *SuggestLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
