package mediator

// Resolver is the lookup the dispatcher consumes. It is usually backed by
// a registry populated at startup; see package registry.
//
// For a typed key, ResolveHandler returns a HandlerInvoker[R] and
// ResolveBehaviors returns BehaviorInvoker[R] or PipelineBehavior values.
// For a void key the handler is a VoidHandlerInvoker and the behaviors are
// VoidBehaviorInvoker or PipelineBehavior values.
//
// Behaviors are returned in registration order. Implementations must be safe
// for concurrent use if the dispatcher is shared between goroutines.
type Resolver interface {
	ResolveHandler(key Key) (any, bool)
	ResolveBehaviors(key Key) []any
}
