package mediator

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kbukum/mediator/errors"
)

// HandlerInvoker is a type-erased Handler keyed only by its result type.
// Resolvers store handlers in this form; see EraseHandler.
type HandlerInvoker[R any] func(ctx context.Context, req Request[R]) (R, error)

// BehaviorInvoker is a type-erased Behavior keyed only by its result type.
type BehaviorInvoker[R any] func(ctx context.Context, req Request[R], next Next[R]) (R, error)

// VoidHandlerInvoker is a type-erased VoidHandler.
type VoidHandlerInvoker func(ctx context.Context, req VoidRequest) error

// VoidBehaviorInvoker is a type-erased VoidBehavior.
type VoidBehaviorInvoker func(ctx context.Context, req VoidRequest, next VoidNext) error

// EraseHandler hides the concrete request type of h. The returned invoker
// asserts the request back to Req before calling h.
func EraseHandler[Req Request[R], R any](h Handler[Req, R]) HandlerInvoker[R] {
	return func(ctx context.Context, req Request[R]) (R, error) {
		typed, ok := req.(Req)
		if !ok {
			var zero R
			return zero, mismatch(reflect.TypeFor[Req](), req)
		}
		return h.Handle(ctx, typed)
	}
}

// EraseBehavior hides the concrete request type of b.
func EraseBehavior[Req Request[R], R any](b Behavior[Req, R]) BehaviorInvoker[R] {
	return func(ctx context.Context, req Request[R], next Next[R]) (R, error) {
		typed, ok := req.(Req)
		if !ok {
			var zero R
			return zero, mismatch(reflect.TypeFor[Req](), req)
		}
		return b.Handle(ctx, typed, next)
	}
}

// EraseVoidHandler hides the concrete request type of h.
func EraseVoidHandler[Req VoidRequest](h VoidHandler[Req]) VoidHandlerInvoker {
	return func(ctx context.Context, req VoidRequest) error {
		typed, ok := req.(Req)
		if !ok {
			return mismatch(reflect.TypeFor[Req](), req)
		}
		return h.Handle(ctx, typed)
	}
}

// EraseVoidBehavior hides the concrete request type of b.
func EraseVoidBehavior[Req VoidRequest](b VoidBehavior[Req]) VoidBehaviorInvoker {
	return func(ctx context.Context, req VoidRequest, next VoidNext) error {
		typed, ok := req.(Req)
		if !ok {
			return mismatch(reflect.TypeFor[Req](), req)
		}
		return b.Handle(ctx, typed, next)
	}
}

func mismatch(want reflect.Type, got any) error {
	return errors.InvalidRegistration(fmt.Sprintf("invoker for %s received %s", TypeName(want), RequestName(got)))
}
