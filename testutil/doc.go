// Package testutil provides helpers for testing code built on the mediator.
//
// A Recorder collects events from handlers and behaviors in the order they
// happen, from any number of goroutines. The spy constructors wire a
// Recorder into the dispatch chain:
//
//	rec := testutil.NewRecorder()
//	r := registry.New()
//	_ = registry.AddPipelineBehavior(r, testutil.SpyBehavior(rec, "B1"))
//	_ = registry.AddPipelineBehavior(r, testutil.SpyBehavior(rec, "B2"))
//	_ = registry.AddHandlerFunc[Echo, string](r, testutil.SpyHandler[Echo, string](rec, "H", "ok"))
//
//	_, _ = mediator.Send[string](ctx, mediator.New(r), Echo{})
//	testutil.T(t).ExpectEvents(rec, "B1", "B2", "H", "H:done", "B2:done", "B1:done")
//
// THelper wraps *testing.T with assertions that fail the test with a
// readable message.
package testutil
