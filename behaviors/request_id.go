package behaviors

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/mediator/logger"
	"github.com/kbukum/mediator/mediator"
)

// RequestID makes sure every request carries an id on its context. An id
// already present, e.g. from an outer request, is kept. The first id seen
// also becomes the correlation id, so nested requests share it. Loggers
// obtained through logger.WithContext include both.
func RequestID() mediator.PipelineBehavior {
	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (any, error) {
		id := logger.RequestIDFromContext(ctx)
		if id == "" {
			id = uuid.NewString()
			ctx = logger.ContextWithRequestID(ctx, id)
		}
		if logger.CorrelationIDFromContext(ctx) == "" {
			ctx = logger.ContextWithCorrelationID(ctx, id)
		}
		return next(ctx)
	})
}

// RequestIDFromContext returns the id set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return logger.RequestIDFromContext(ctx)
}
