package testutil

import (
	"context"

	"github.com/kbukum/mediator/mediator"
)

// DoneSuffix is appended to a spy's name when the rest of the chain returns.
const DoneSuffix = ":done"

// SpyBehavior returns a behavior that records name before calling next and
// name+DoneSuffix after it returns.
func SpyBehavior(rec *Recorder, name string) mediator.PipelineBehavior {
	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (any, error) {
		rec.Record(name)
		out, err := next(ctx)
		rec.Record(name + DoneSuffix)
		return out, err
	})
}

// ShortCircuit returns a behavior that records name and returns result and
// err without calling next.
func ShortCircuit(rec *Recorder, name string, result any, err error) mediator.PipelineBehavior {
	return mediator.PipelineBehaviorFunc(func(ctx context.Context, req any, next mediator.AnyNext) (any, error) {
		rec.Record(name)
		return result, err
	})
}

// SpyHandler returns a handler func that records name and name+DoneSuffix and
// returns result.
func SpyHandler[Req mediator.Request[R], R any](rec *Recorder, name string, result R) func(context.Context, Req) (R, error) {
	return func(ctx context.Context, req Req) (R, error) {
		rec.Record(name)
		rec.Record(name + DoneSuffix)
		return result, nil
	}
}

// FailingHandler returns a handler func that records name and returns err.
func FailingHandler[Req mediator.Request[R], R any](rec *Recorder, name string, err error) func(context.Context, Req) (R, error) {
	return func(ctx context.Context, req Req) (R, error) {
		rec.Record(name)
		var zero R
		return zero, err
	}
}

// SpyVoidHandler returns a void handler func that records name and
// name+DoneSuffix.
func SpyVoidHandler[Req mediator.VoidRequest](rec *Recorder, name string) func(context.Context, Req) error {
	return func(ctx context.Context, req Req) error {
		rec.Record(name)
		rec.Record(name + DoneSuffix)
		return nil
	}
}
