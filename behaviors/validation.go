package behaviors

import (
	"context"

	"github.com/kbukum/mediator/errors"
	"github.com/kbukum/mediator/mediator"
	"github.com/kbukum/mediator/validation"
)

// Validation rejects invalid requests with INVALID_INPUT before they reach
// the rest of the chain. See validation.Request for what is checked.
func Validation() mediator.PipelineBehavior {
	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (any, error) {
		if err := validation.Request(req); err != nil {
			if !errors.IsAppError(err) {
				err = errors.Validation(err.Error()).WithCause(err)
			}
			return nil, err
		}
		return next(ctx)
	})
}
