// Package ratelimit decides whether a GraphQL query may run.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/graph-gophers/animals/config"
	"github.com/graph-gophers/animals/ratelimit/noop"
)

// RateLimiter reports whether a query should be rejected.
type RateLimiter interface {
	LimitQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}) bool
}

// TokenBucket limits queries server-wide with a token bucket.
type TokenBucket struct {
	l *rate.Limiter
}

func NewTokenBucket(rps float64, burst int) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	return &TokenBucket{l: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (b *TokenBucket) LimitQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}) bool {
	return !b.l.Allow()
}

// New returns a TokenBucket for c, or a limiter that never rejects when the
// rate is zero.
func New(c config.RateLimit) RateLimiter {
	if c.RequestsPerSecond <= 0 {
		return &noop.RateLimiter{}
	}
	return NewTokenBucket(c.RequestsPerSecond, c.Burst)
}
