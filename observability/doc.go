// Package observability wires OpenTelemetry metrics for request dispatch.
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("orders"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("orders"))
//	metrics.RecordStart(ctx)
//	metrics.RecordEnd(ctx, "orders.PlaceOrder", observability.StatusOK, elapsed)
//
// Instrument names:
//
//	mediator.requests.total     counter, by request and status
//	mediator.requests.duration  histogram in seconds, by request
//	mediator.requests.active    up-down counter
//	mediator.errors.total       counter, by request and error code
package observability
