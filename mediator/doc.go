// Package mediator provides an in-process request dispatcher.
//
// A caller sends a request value; the dispatcher resolves the single handler
// registered for the request's concrete type, wraps it in the behaviors
// registered for that type and runs the composed chain.
//
// # Requests
//
// Requests are plain structs that embed a marker:
//
//	type Echo struct {
//	    mediator.Returns[string]
//	    Text string
//	}
//
//	type Ping struct {
//	    mediator.Void
//	}
//
// # Dispatch
//
//	d := mediator.New(reg)
//	out, err := mediator.Send[string](ctx, d, Echo{Text: "hi"})
//	err = mediator.SendVoid(ctx, d, Ping{})
//
// # Behaviors
//
// Behaviors wrap the handler. The first registered behavior is the
// outermost one: it runs first on the way in and last on the way out.
// A behavior may skip calling next to short-circuit the chain.
//
// The dispatcher itself holds no state between calls, starts no goroutines
// and never inspects the context; it passes ctx through to every link.
package mediator
