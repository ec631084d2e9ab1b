package mediator

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kbukum/mediator/errors"
)

// compose folds behaviors around the handler from the innermost link
// outward, so behaviors[0] ends up outermost. The fold is a loop; only
// executing the chain nests calls.
func compose[R any](req Request[R], handler HandlerInvoker[R], behaviors []BehaviorInvoker[R]) Next[R] {
	next := Next[R](func(ctx context.Context) (R, error) {
		return handler(ctx, req)
	})
	for i := len(behaviors) - 1; i >= 0; i-- {
		behavior, inner := behaviors[i], next
		next = func(ctx context.Context) (R, error) {
			return behavior(ctx, req, inner)
		}
	}
	return next
}

func composeVoid(req VoidRequest, handler VoidHandlerInvoker, behaviors []VoidBehaviorInvoker) VoidNext {
	next := VoidNext(func(ctx context.Context) error {
		return handler(ctx, req)
	})
	for i := len(behaviors) - 1; i >= 0; i-- {
		behavior, inner := behaviors[i], next
		next = func(ctx context.Context) error {
			return behavior(ctx, req, inner)
		}
	}
	return next
}

// pipelineInvoker adapts a type-agnostic behavior to the typed chain.
func pipelineInvoker[R any](b PipelineBehavior) BehaviorInvoker[R] {
	return func(ctx context.Context, req Request[R], next Next[R]) (R, error) {
		out, err := b.Handle(ctx, req, func(ctx context.Context) (any, error) {
			return next(ctx)
		})
		return castResult[R](out, err)
	}
}

func voidPipelineInvoker(b PipelineBehavior) VoidBehaviorInvoker {
	return func(ctx context.Context, req VoidRequest, next VoidNext) error {
		_, err := b.Handle(ctx, req, func(ctx context.Context) (any, error) {
			return nil, next(ctx)
		})
		return err
	}
}

// castResult converts the value produced by a PipelineBehavior back to R.
// nil maps to the zero value of R.
func castResult[R any](out any, err error) (R, error) {
	var zero R
	if out == nil {
		return zero, err
	}
	result, ok := out.(R)
	if !ok {
		if err != nil {
			return zero, err
		}
		return zero, errors.InvalidRegistration(fmt.Sprintf(
			"pipeline behavior returned %T, want %s", out, TypeName(reflect.TypeFor[R]())))
	}
	return result, err
}
