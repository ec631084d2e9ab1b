package resilience

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/kbukum/mediator/errors"
)

// RateLimiterConfig configures a token bucket.
type RateLimiterConfig struct {
	// Name identifies this limiter in errors and logs.
	Name string
	// Rate is the number of calls admitted per second.
	Rate float64
	// Burst is the bucket size.
	Burst int
	// Now overrides the clock seen by Allow, Execute and Tokens.
	// Wait always uses the wall clock.
	Now func() time.Time
}

// DefaultRateLimiterConfig returns sensible defaults.
func DefaultRateLimiterConfig(name string) RateLimiterConfig {
	return RateLimiterConfig{
		Name:  name,
		Rate:  10.0,
		Burst: 20,
	}
}

// RateLimiter admits calls at a steady rate with bursts up to Burst.
type RateLimiter struct {
	config  RateLimiterConfig
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter with a full bucket.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.Name == "" {
		config.Name = "rate-limiter"
	}
	if config.Rate <= 0 {
		config.Rate = 10.0
	}
	if config.Burst <= 0 {
		config.Burst = max(1, int(config.Rate))
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &RateLimiter{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(config.Rate), config.Burst),
	}
}

// Allow takes a token if one is available.
func (rl *RateLimiter) Allow() bool {
	return rl.limiter.AllowN(rl.config.Now(), 1)
}

// Execute runs fn if a token is available and returns RATE_LIMITED otherwise.
func (rl *RateLimiter) Execute(ctx context.Context, fn func(context.Context) error) error {
	if !rl.Allow() {
		return errors.RateLimited(rl.config.Name)
	}
	return fn(ctx)
}

// Wait blocks until a token is available. If ctx ends first, ctx.Err() is
// returned; if the token cannot arrive before the ctx deadline, Wait fails
// with RATE_LIMITED at once. In both cases no token is consumed.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	err := rl.limiter.Wait(ctx)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return errors.RateLimited(rl.config.Name).WithCause(err)
}

// Name returns the limiter's name.
func (rl *RateLimiter) Name() string { return rl.config.Name }

// Tokens returns the number of tokens currently available.
func (rl *RateLimiter) Tokens() float64 {
	return rl.limiter.TokensAt(rl.config.Now())
}
