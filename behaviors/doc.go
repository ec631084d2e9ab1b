// Package behaviors provides ready-made pipeline behaviors.
//
// Every constructor except Cache returns a mediator.PipelineBehavior, which
// can be registered for all request types or for a single one:
//
//	_ = registry.AddPipelineBehavior(r, behaviors.RequestID())
//	_ = registry.AddPipelineBehavior(r, behaviors.Recover(log))
//	_ = registry.AddPipelineBehavior(r, behaviors.Logging(log))
//	_ = registry.AddTypedPipelineBehavior[PlaceOrder, OrderID](r, behaviors.Bulkhead(bh))
//
// Behaviors run in registration order, so register the ones that set up
// context (request id, recovery) before the ones that consume it.
//
// Cache is typed: it needs the result type to hand back a stored value.
//
//	store, _ := behaviors.NewMemoryStore(1024, time.Minute)
//	_ = registry.AddBehavior[GetPrice, Price](r, behaviors.Cache[GetPrice, Price](store, func(q GetPrice) string {
//	    return q.SKU
//	}))
package behaviors
