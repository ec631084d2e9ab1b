package registry

import (
	"context"

	"github.com/kbukum/mediator/errors"
	"github.com/kbukum/mediator/mediator"
)

// AddHandler registers h as the handler for requests of type Req producing R.
func AddHandler[Req mediator.Request[R], R any](r *Registry, h mediator.Handler[Req, R]) error {
	key := mediator.KeyFor[Req, R]()
	if err := checkRequestType(key.Request); err != nil {
		return err
	}
	if isNil(h) {
		return nilArgument("handler", key)
	}
	return r.addHandler(key, mediator.EraseHandler(h))
}

// AddHandlerFunc registers fn as the handler for requests of type Req.
func AddHandlerFunc[Req mediator.Request[R], R any](r *Registry, fn func(context.Context, Req) (R, error)) error {
	if fn == nil {
		return nilArgument("handler", mediator.KeyFor[Req, R]())
	}
	return AddHandler[Req, R](r, mediator.HandlerFunc[Req, R](fn))
}

// AddHandlerFactory registers a handler that is constructed anew for every
// request. Use it for handlers that carry per-request state.
func AddHandlerFactory[Req mediator.Request[R], R any](r *Registry, factory func() mediator.Handler[Req, R]) error {
	if factory == nil {
		return nilArgument("handler factory", mediator.KeyFor[Req, R]())
	}
	return AddHandler[Req, R](r, mediator.HandlerFunc[Req, R](func(ctx context.Context, req Req) (R, error) {
		h := factory()
		if isNil(h) {
			var zero R
			return zero, errors.InvalidRegistration("handler factory for " + mediator.RequestName(req) + " returned nil")
		}
		return h.Handle(ctx, req)
	}))
}

// AddVoidHandler registers h as the handler for void requests of type Req.
func AddVoidHandler[Req mediator.VoidRequest](r *Registry, h mediator.VoidHandler[Req]) error {
	key := mediator.VoidKeyFor[Req]()
	if err := checkRequestType(key.Request); err != nil {
		return err
	}
	if isNil(h) {
		return nilArgument("handler", key)
	}
	return r.addHandler(key, mediator.EraseVoidHandler(h))
}

// AddVoidHandlerFunc registers fn as the handler for void requests of type Req.
func AddVoidHandlerFunc[Req mediator.VoidRequest](r *Registry, fn func(context.Context, Req) error) error {
	if fn == nil {
		return nilArgument("handler", mediator.VoidKeyFor[Req]())
	}
	return AddVoidHandler[Req](r, mediator.VoidHandlerFunc[Req](fn))
}

// AddVoidHandlerFactory is the void form of AddHandlerFactory.
func AddVoidHandlerFactory[Req mediator.VoidRequest](r *Registry, factory func() mediator.VoidHandler[Req]) error {
	if factory == nil {
		return nilArgument("handler factory", mediator.VoidKeyFor[Req]())
	}
	return AddVoidHandler[Req](r, mediator.VoidHandlerFunc[Req](func(ctx context.Context, req Req) error {
		h := factory()
		if isNil(h) {
			return errors.InvalidRegistration("handler factory for " + mediator.RequestName(req) + " returned nil")
		}
		return h.Handle(ctx, req)
	}))
}

// AddBehavior appends b to the behaviors for requests of type Req.
// Behaviors run in the order they are added, the first one outermost.
func AddBehavior[Req mediator.Request[R], R any](r *Registry, b mediator.Behavior[Req, R]) error {
	key := mediator.KeyFor[Req, R]()
	if err := checkRequestType(key.Request); err != nil {
		return err
	}
	if isNil(b) {
		return nilArgument("behavior", key)
	}
	r.addBehavior(key, mediator.EraseBehavior(b))
	return nil
}

// AddBehaviorFunc appends fn to the behaviors for requests of type Req.
func AddBehaviorFunc[Req mediator.Request[R], R any](r *Registry, fn func(context.Context, Req, mediator.Next[R]) (R, error)) error {
	if fn == nil {
		return nilArgument("behavior", mediator.KeyFor[Req, R]())
	}
	return AddBehavior[Req, R](r, mediator.BehaviorFunc[Req, R](fn))
}

// AddVoidBehavior appends b to the behaviors for void requests of type Req.
func AddVoidBehavior[Req mediator.VoidRequest](r *Registry, b mediator.VoidBehavior[Req]) error {
	key := mediator.VoidKeyFor[Req]()
	if err := checkRequestType(key.Request); err != nil {
		return err
	}
	if isNil(b) {
		return nilArgument("behavior", key)
	}
	r.addBehavior(key, mediator.EraseVoidBehavior(b))
	return nil
}

// AddVoidBehaviorFunc appends fn to the behaviors for void requests of type Req.
func AddVoidBehaviorFunc[Req mediator.VoidRequest](r *Registry, fn func(context.Context, Req, mediator.VoidNext) error) error {
	if fn == nil {
		return nilArgument("behavior", mediator.VoidKeyFor[Req]())
	}
	return AddVoidBehavior[Req](r, mediator.VoidBehaviorFunc[Req](fn))
}

// AddTypedPipelineBehavior appends a type-agnostic behavior to the behaviors
// of a single typed request.
func AddTypedPipelineBehavior[Req mediator.Request[R], R any](r *Registry, b mediator.PipelineBehavior) error {
	key := mediator.KeyFor[Req, R]()
	if err := checkRequestType(key.Request); err != nil {
		return err
	}
	if isNil(b) {
		return nilArgument("behavior", key)
	}
	r.addBehavior(key, b)
	return nil
}

// AddVoidPipelineBehavior appends a type-agnostic behavior to the behaviors
// of a single void request.
func AddVoidPipelineBehavior[Req mediator.VoidRequest](r *Registry, b mediator.PipelineBehavior) error {
	key := mediator.VoidKeyFor[Req]()
	if err := checkRequestType(key.Request); err != nil {
		return err
	}
	if isNil(b) {
		return nilArgument("behavior", key)
	}
	r.addBehavior(key, b)
	return nil
}

// AddPipelineBehavior registers b for every request type, typed and void.
func AddPipelineBehavior(r *Registry, b mediator.PipelineBehavior) error {
	if isNil(b) {
		return errors.InvalidRegistration("pipeline behavior is nil")
	}
	r.addPipeline(b)
	return nil
}
