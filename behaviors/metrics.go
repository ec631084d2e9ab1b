package behaviors

import (
	"context"
	"time"

	"github.com/kbukum/mediator/errors"
	"github.com/kbukum/mediator/mediator"
	"github.com/kbukum/mediator/observability"
)

// Metrics records request count, duration, in-flight gauge and errors.
func Metrics(m *observability.Metrics) mediator.PipelineBehavior {
	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (any, error) {
		name := mediator.RequestName(req)
		start := time.Now()
		m.RecordStart(ctx)

		out, err := next(ctx)

		status := observability.StatusOK
		if err != nil {
			status = observability.StatusError
			m.RecordError(ctx, name, errorCode(err))
		}
		m.RecordEnd(ctx, name, status, time.Since(start))
		return out, err
	})
}

func errorCode(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "UNKNOWN"
}
