package behaviors

import (
	"context"
	"time"

	"github.com/kbukum/mediator/errors"
	"github.com/kbukum/mediator/logger"
	"github.com/kbukum/mediator/mediator"
)

// Logging logs every request: debug on success, error on failure.
func Logging(log *logger.Logger) mediator.PipelineBehavior {
	return LoggingWithThreshold(log, 0)
}

// LoggingWithThreshold is Logging that also warns when a successful request
// takes longer than slow. A zero threshold disables the warning. A nil log
// uses the named "mediator" logger.
func LoggingWithThreshold(log *logger.Logger, slow time.Duration) mediator.PipelineBehavior {
	if log == nil {
		log = logger.Get(logger.ComponentMediator)
	}

	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (any, error) {
		start := time.Now()
		out, err := next(ctx)
		elapsed := time.Since(start)

		fields := logger.RequestFields("send", mediator.RequestName(req), elapsed)
		l := log.WithContext(ctx)

		switch {
		case err != nil:
			fields = logger.MergeWithError(fields, err)
			if appErr, ok := errors.AsAppError(err); ok {
				fields[logger.FieldStatus] = string(appErr.Code)
			}
			l.Error("request failed", fields)
		case slow > 0 && elapsed > slow:
			fields["threshold_ms"] = slow.Milliseconds()
			l.Warn("slow request", fields)
		default:
			l.Debug("request handled", fields)
		}
		return out, err
	})
}
