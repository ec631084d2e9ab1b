package mediator

import "context"

// Handler handles requests of type Req and produces an R.
type Handler[Req Request[R], R any] interface {
	Handle(ctx context.Context, req Req) (R, error)
}

// VoidHandler handles requests of type Req that produce no result.
type VoidHandler[Req VoidRequest] interface {
	Handle(ctx context.Context, req Req) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc[Req Request[R], R any] func(ctx context.Context, req Req) (R, error)

// Handle calls f(ctx, req).
func (f HandlerFunc[Req, R]) Handle(ctx context.Context, req Req) (R, error) {
	return f(ctx, req)
}

// VoidHandlerFunc adapts a function to a VoidHandler.
type VoidHandlerFunc[Req VoidRequest] func(ctx context.Context, req Req) error

// Handle calls f(ctx, req).
func (f VoidHandlerFunc[Req]) Handle(ctx context.Context, req Req) error {
	return f(ctx, req)
}
