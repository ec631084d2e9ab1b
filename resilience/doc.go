// Package resilience provides the admission-control primitives behind the
// bulkhead, circuit breaker and rate limit behaviors.
//
//   - Bulkhead caps the number of requests in flight.
//   - CircuitBreaker fails fast after repeated failures.
//   - RateLimiter admits requests at a fixed rate with a token bucket.
//
// Rejections are *errors.AppError values (RATE_LIMITED or
// SERVICE_UNAVAILABLE), so callers can branch on errors.HasCode and report
// them as retryable.
//
//	bh := resilience.NewBulkhead(resilience.BulkheadConfig{Name: "orders", MaxConcurrent: 10})
//	err := bh.Execute(ctx, func(ctx context.Context) error {
//	    return handle(ctx)
//	})
package resilience
