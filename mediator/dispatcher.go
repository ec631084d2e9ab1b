package mediator

import (
	"context"
	"fmt"

	"github.com/kbukum/mediator/errors"
)

// Dispatcher routes requests to the handler and behaviors supplied by its
// Resolver. It keeps no per-call state and is safe for concurrent use as
// long as the Resolver is.
type Dispatcher struct {
	resolver Resolver
}

// New creates a Dispatcher backed by resolver.
func New(resolver Resolver) *Dispatcher {
	return &Dispatcher{resolver: resolver}
}

// Send dispatches a void request. It is the method form of SendVoid.
func (d *Dispatcher) Send(ctx context.Context, req VoidRequest) error {
	return SendVoid(ctx, d, req)
}

// Send dispatches req through the behaviors registered for its runtime type
// and returns the handler's result.
//
// A missing handler fails with HANDLER_NOT_FOUND before any behavior runs.
// Failures raised inside the chain are returned unchanged.
func Send[R any](ctx context.Context, d *Dispatcher, req Request[R]) (R, error) {
	var zero R
	if req == nil {
		return zero, errors.InvalidRequest("request is nil")
	}
	key := KeyOf(req)

	entry, ok := d.resolver.ResolveHandler(key)
	if !ok {
		return zero, errors.HandlerNotFound(TypeName(key.Request), TypeName(key.Response))
	}
	handler, ok := entry.(HandlerInvoker[R])
	if !ok {
		return zero, unexpectedEntry(key, "handler", entry)
	}

	entries := d.resolver.ResolveBehaviors(key)
	behaviors := make([]BehaviorInvoker[R], len(entries))
	for i, e := range entries {
		switch b := e.(type) {
		case BehaviorInvoker[R]:
			behaviors[i] = b
		case PipelineBehavior:
			behaviors[i] = pipelineInvoker[R](b)
		default:
			return zero, unexpectedEntry(key, "behavior", e)
		}
	}

	return compose(req, handler, behaviors)(ctx)
}

// SendVoid dispatches a request that produces no result.
func SendVoid(ctx context.Context, d *Dispatcher, req VoidRequest) error {
	if req == nil {
		return errors.InvalidRequest("request is nil")
	}
	key := VoidKeyOf(req)

	entry, ok := d.resolver.ResolveHandler(key)
	if !ok {
		return errors.HandlerNotFound(TypeName(key.Request), "")
	}
	handler, ok := entry.(VoidHandlerInvoker)
	if !ok {
		return unexpectedEntry(key, "handler", entry)
	}

	entries := d.resolver.ResolveBehaviors(key)
	behaviors := make([]VoidBehaviorInvoker, len(entries))
	for i, e := range entries {
		switch b := e.(type) {
		case VoidBehaviorInvoker:
			behaviors[i] = b
		case PipelineBehavior:
			behaviors[i] = voidPipelineInvoker(b)
		default:
			return unexpectedEntry(key, "behavior", e)
		}
	}

	return composeVoid(req, handler, behaviors)(ctx)
}

// IsHandlerNotFound reports whether err is a HANDLER_NOT_FOUND failure.
func IsHandlerNotFound(err error) bool {
	return errors.HasCode(err, errors.ErrCodeHandlerNotFound)
}

func unexpectedEntry(key Key, kind string, entry any) error {
	return errors.InvalidRegistration(fmt.Sprintf("resolver returned %T as %s for %s", entry, kind, key)).
		WithDetail("request", TypeName(key.Request))
}
