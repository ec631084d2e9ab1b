package behaviors

import (
	"context"

	"github.com/kbukum/mediator/mediator"
	"github.com/kbukum/mediator/resilience"
)

// Bulkhead limits how many requests run the rest of the chain at once.
// Requests that find no slot fail with RATE_LIMITED.
func Bulkhead(b *resilience.Bulkhead) mediator.PipelineBehavior {
	return guard(b.Execute)
}

// CircuitBreaker fails requests with SERVICE_UNAVAILABLE while cb is open.
func CircuitBreaker(cb *resilience.CircuitBreaker) mediator.PipelineBehavior {
	return guard(cb.Execute)
}

// RateLimit fails requests with RATE_LIMITED when rl has no token left.
func RateLimit(rl *resilience.RateLimiter) mediator.PipelineBehavior {
	return guard(rl.Execute)
}

// guard adapts an Execute-style wrapper to a pipeline behavior.
func guard(execute func(context.Context, func(context.Context) error) error) mediator.PipelineBehavior {
	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (any, error) {
		var out any
		err := execute(ctx, func(ctx context.Context) error {
			var err error
			out, err = next(ctx)
			return err
		})
		return out, err
	})
}
