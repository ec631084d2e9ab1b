// Package registry provides the in-memory Resolver consumed by
// mediator.Dispatcher.
//
// Handlers and behaviors are registered at startup with the generic Add*
// functions, which erase the concrete request type once so that dispatch
// needs a single type assertion per link:
//
//	r := registry.New(registry.WithLogger(log))
//	if err := registry.AddHandlerFunc[Echo, string](r, echo); err != nil {
//		return err
//	}
//	_ = registry.AddPipelineBehavior(r, behaviors.Logging(log))
//	d := mediator.New(r)
//
// At most one handler may be registered per request type. Behaviors are
// returned in registration order; behaviors registered with
// AddPipelineBehavior apply to every request type and are interleaved with
// type-specific behaviors by the order in which they were added.
//
// Registration and resolution may run concurrently. Registering after
// dispatch has begun is allowed; calls already in flight keep the chain they
// resolved.
package registry
