package behaviors

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/kbukum/mediator/errors"
	"github.com/kbukum/mediator/mediator"
)

// Timeout gives the rest of the chain a context that expires after d.
// Handlers must watch the context; when they give up with
// context.DeadlineExceeded the failure is reported as TIMEOUT.
func Timeout(d time.Duration) mediator.PipelineBehavior {
	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (any, error) {
		if d <= 0 {
			return next(ctx)
		}
		tctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		out, err := next(tctx)
		if err != nil && stderrors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, errors.Timeout(mediator.RequestName(req)).
				WithCause(err).
				WithDetail("timeout", d.String())
		}
		return out, err
	})
}
