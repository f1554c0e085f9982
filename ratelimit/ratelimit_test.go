package ratelimit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graph-gophers/animals/config"
	"github.com/graph-gophers/animals/ratelimit"
	"github.com/graph-gophers/animals/ratelimit/noop"
)

func TestNewDisabled(t *testing.T) {
	l := ratelimit.New(config.RateLimit{})
	assert.IsType(t, &noop.RateLimiter{}, l)
	for i := 0; i < 100; i++ {
		assert.False(t, l.LimitQuery(context.Background(), "{ animals { species } }", "", nil))
	}
}

func TestTokenBucket(t *testing.T) {
	l := ratelimit.New(config.RateLimit{RequestsPerSecond: 0.001, Burst: 2})
	ctx := context.Background()
	assert.False(t, l.LimitQuery(ctx, "{ animals { species } }", "", nil))
	assert.False(t, l.LimitQuery(ctx, "{ animals { species } }", "", nil))
	assert.True(t, l.LimitQuery(ctx, "{ animals { species } }", "", nil))
}

func TestTokenBucketMinimumBurst(t *testing.T) {
	l := ratelimit.NewTokenBucket(0.001, 0)
	ctx := context.Background()
	assert.False(t, l.LimitQuery(ctx, "{ makeSound(species: \"Lion\") }", "", nil))
	assert.True(t, l.LimitQuery(ctx, "{ makeSound(species: \"Lion\") }", "", nil))
}
