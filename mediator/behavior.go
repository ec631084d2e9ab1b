package mediator

import "context"

// Next invokes the remainder of the chain: the next behavior, or the handler
// when called from the innermost behavior.
type Next[R any] func(ctx context.Context) (R, error)

// VoidNext is the continuation for void requests.
type VoidNext func(ctx context.Context) error

// Behavior wraps the handling of requests of type Req.
// It may act before and after calling next, or return without calling it.
type Behavior[Req Request[R], R any] interface {
	Handle(ctx context.Context, req Req, next Next[R]) (R, error)
}

// VoidBehavior wraps the handling of void requests of type Req.
type VoidBehavior[Req VoidRequest] interface {
	Handle(ctx context.Context, req Req, next VoidNext) error
}

// BehaviorFunc adapts a function to a Behavior.
type BehaviorFunc[Req Request[R], R any] func(ctx context.Context, req Req, next Next[R]) (R, error)

// Handle calls f(ctx, req, next).
func (f BehaviorFunc[Req, R]) Handle(ctx context.Context, req Req, next Next[R]) (R, error) {
	return f(ctx, req, next)
}

// VoidBehaviorFunc adapts a function to a VoidBehavior.
type VoidBehaviorFunc[Req VoidRequest] func(ctx context.Context, req Req, next VoidNext) error

// Handle calls f(ctx, req, next).
func (f VoidBehaviorFunc[Req]) Handle(ctx context.Context, req Req, next VoidNext) error {
	return f(ctx, req, next)
}

// AnyNext is the continuation seen by a PipelineBehavior. For void requests
// the returned value is always nil.
type AnyNext func(ctx context.Context) (any, error)

// PipelineBehavior is a behavior that does not depend on the request type.
// It can be registered for every request shape at once.
//
// A PipelineBehavior that returns without calling next must return a value
// assignable to the request's result type, or nil for the zero value.
type PipelineBehavior interface {
	Handle(ctx context.Context, req any, next AnyNext) (any, error)
}

// PipelineBehaviorFunc adapts a function to a PipelineBehavior.
type PipelineBehaviorFunc func(ctx context.Context, req any, next AnyNext) (any, error)

// Handle calls f(ctx, req, next).
func (f PipelineBehaviorFunc) Handle(ctx context.Context, req any, next AnyNext) (any, error) {
	return f(ctx, req, next)
}
