package noop

import "context"

// RateLimiter never rejects a query.
type RateLimiter struct{}

func (r *RateLimiter) LimitQuery(ctx context.Context, queryString string, operationName string, variables map[string]interface{}) bool {
	return false
}
