package behaviors_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kbukum/mediator/behaviors"
	"github.com/kbukum/mediator/errors"
	"github.com/kbukum/mediator/mediator"
	"github.com/kbukum/mediator/registry"
	"github.com/kbukum/mediator/resilience"
	"github.com/kbukum/mediator/testutil"
)

func TestBulkhead(t *testing.T) {
	bh := resilience.NewBulkhead(resilience.BulkheadConfig{Name: "slow", MaxConcurrent: 1})
	entered := make(chan struct{})
	release := make(chan struct{})

	d := newDispatcher(t, func(r *registry.Registry) {
		_ = registry.AddTypedPipelineBehavior[Slow, int](r, behaviors.Bulkhead(bh))
		_ = registry.AddHandlerFunc[Slow, int](r, func(context.Context, Slow) (int, error) {
			close(entered)
			<-release
			return 1, nil
		})
	})

	var g errgroup.Group
	g.Go(func() error {
		_, err := mediator.Send[int](context.Background(), d, Slow{})
		return err
	})
	<-entered

	_, err := mediator.Send[int](context.Background(), d, Slow{})
	testutil.T(t).ErrorCode(err, errors.ErrCodeRateLimited)

	close(release)
	if err := g.Wait(); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
}

func TestCircuitBreaker(t *testing.T) {
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{Name: "echo", MaxFailures: 2, Timeout: time.Hour})
	calls := 0
	d := newDispatcher(t, func(r *registry.Registry) {
		_ = registry.AddPipelineBehavior(r, behaviors.CircuitBreaker(cb))
		_ = registry.AddHandlerFunc[Echo, string](r, func(context.Context, Echo) (string, error) {
			calls++
			return "", errors.Internal(nil)
		})
	})

	for i := 0; i < 2; i++ {
		_, err := mediator.Send[string](context.Background(), d, Echo{})
		testutil.T(t).ErrorCode(err, errors.ErrCodeInternal)
	}
	_, err := mediator.Send[string](context.Background(), d, Echo{})
	testutil.T(t).ErrorCode(err, errors.ErrCodeServiceUnavailable)
	if calls != 2 {
		t.Errorf("expected handler to stop being called once open, got %d calls", calls)
	}
}

func TestRateLimit(t *testing.T) {
	rl := resilience.NewRateLimiter(resilience.RateLimiterConfig{Name: "echo", Rate: 0.001, Burst: 2})
	d := newDispatcher(t, func(r *registry.Registry) {
		_ = registry.AddPipelineBehavior(r, behaviors.RateLimit(rl))
		_ = registry.AddHandlerFunc[Echo, string](r, echo)
	})

	for i := 0; i < 2; i++ {
		got, err := mediator.Send[string](context.Background(), d, Echo{Text: "ok"})
		testutil.T(t).NoError(err)
		if got != "ok" {
			t.Errorf("expected ok, got %q", got)
		}
	}
	_, err := mediator.Send[string](context.Background(), d, Echo{Text: "ok"})
	testutil.T(t).ErrorCode(err, errors.ErrCodeRateLimited)
}

func TestGuard_VoidRequests(t *testing.T) {
	bh := resilience.NewBulkhead(resilience.DefaultBulkheadConfig("void"))
	handled := false
	d := newDispatcher(t, func(r *registry.Registry) {
		_ = registry.AddPipelineBehavior(r, behaviors.Bulkhead(bh))
		_ = registry.AddVoidHandlerFunc[Rename](r, func(context.Context, Rename) error {
			handled = true
			return nil
		})
	})

	testutil.T(t).NoError(d.Send(context.Background(), Rename{}))
	if !handled {
		t.Error("expected void handler to run through the bulkhead")
	}
}
