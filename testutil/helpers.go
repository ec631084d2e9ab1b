package testutil

import (
	"context"
	"slices"
	"testing"

	"github.com/kbukum/mediator/errors"
)

// THelper provides testing.T integration for mediator tests.
type THelper struct {
	t   *testing.T
	ctx context.Context
}

// T wraps a testing.T to provide helper methods.
//
// Example:
//
//	func TestEcho(t *testing.T) {
//	    h := testutil.T(t)
//	    h.NoError(registry.AddHandlerFunc[Echo, string](r, echo))
//	    h.ExpectEvents(rec, "H", "H:done")
//	}
func T(t *testing.T) *THelper {
	return &THelper{t: t, ctx: context.Background()}
}

// WithContext sets the context returned by Context.
func (h *THelper) WithContext(ctx context.Context) *THelper {
	h.ctx = ctx
	return h
}

// Context returns the helper's context, canceled when the test ends.
func (h *THelper) Context() context.Context {
	ctx, cancel := context.WithCancel(h.ctx)
	h.t.Cleanup(cancel)
	return ctx
}

// NoError fails the test immediately if err is not nil.
func (h *THelper) NoError(err error) {
	h.t.Helper()
	if err != nil {
		h.t.Fatalf("unexpected error: %v", err)
	}
}

// ErrorCode fails the test unless err carries code.
func (h *THelper) ErrorCode(err error, code errors.ErrorCode) {
	h.t.Helper()
	if !errors.HasCode(err, code) {
		h.t.Fatalf("expected error code %s, got %v", code, err)
	}
}

// ExpectEvents fails the test unless rec holds exactly want, in order.
func (h *THelper) ExpectEvents(rec *Recorder, want ...string) {
	h.t.Helper()
	if got := rec.Events(); !slices.Equal(got, want) {
		h.t.Fatalf("events = %v, want %v", got, want)
	}
}
