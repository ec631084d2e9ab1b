package behaviors

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/kbukum/mediator/errors"
	"github.com/kbukum/mediator/logger"
	"github.com/kbukum/mediator/mediator"
)

// Recover turns a panic in the rest of the chain into an INTERNAL_ERROR.
// A panic carrying an AppError keeps that error's code. A nil log uses the
// named "mediator" logger.
func Recover(log *logger.Logger) mediator.PipelineBehavior {
	if log == nil {
		log = logger.Get(logger.ComponentMediator)
	}

	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (out any, err error) {
		defer func() {
			if r := recover(); r != nil {
				name := mediator.RequestName(req)
				log.WithContext(ctx).Error("panic while handling request", map[string]interface{}{
					logger.FieldRequest: name,
					"panic":             fmt.Sprint(r),
					"stack":             string(debug.Stack()),
				})
				out = nil
				err = errors.Wrap(panicError(r)).WithDetail("request", name)
			}
		}()
		return next(ctx)
	})
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
