package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter(InstrumentationName))
	if err != nil {
		t.Fatalf("NewMetrics() failed: %v", err)
	}
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("orders")
	if cfg.ServiceName != "orders" {
		t.Errorf("expected service name orders, got %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" || !cfg.Insecure {
		t.Errorf("unexpected endpoint defaults: %+v", cfg)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected 15s interval, got %v", cfg.Interval)
	}
}

func TestNewResource(t *testing.T) {
	res, err := NewResource("orders", "2.0.0", "test")
	if err != nil {
		t.Fatalf("NewResource() failed: %v", err)
	}
	v, ok := res.Set().Value(attribute.Key("service.name"))
	if !ok || v.AsString() != "orders" {
		t.Errorf("expected service.name=orders, got %v", v)
	}
	v, ok = res.Set().Value(attribute.Key("environment"))
	if !ok || v.AsString() != "test" {
		t.Errorf("expected environment=test, got %v", v)
	}
}

func TestMetrics_RecordRequest(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordStart(ctx)
	m.RecordStart(ctx)
	m.RecordEnd(ctx, "app.Echo", StatusOK, 20*time.Millisecond)

	got := collect(t, reader)

	active, ok := got["mediator.requests.active"].Data.(metricdata.Sum[int64])
	if !ok || len(active.DataPoints) != 1 || active.DataPoints[0].Value != 1 {
		t.Errorf("expected 1 active request, got %+v", got["mediator.requests.active"].Data)
	}

	total, ok := got["mediator.requests.total"].Data.(metricdata.Sum[int64])
	if !ok || len(total.DataPoints) != 1 {
		t.Fatalf("expected one total data point, got %+v", got["mediator.requests.total"].Data)
	}
	dp := total.DataPoints[0]
	if dp.Value != 1 {
		t.Errorf("expected total 1, got %d", dp.Value)
	}
	if v, _ := dp.Attributes.Value("status"); v.AsString() != StatusOK {
		t.Errorf("expected status ok, got %v", v)
	}
	if v, _ := dp.Attributes.Value("request"); v.AsString() != "app.Echo" {
		t.Errorf("expected request app.Echo, got %v", v)
	}

	hist, ok := got["mediator.requests.duration"].Data.(metricdata.Histogram[float64])
	if !ok || len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 1 {
		t.Errorf("expected one duration sample, got %+v", got["mediator.requests.duration"].Data)
	}
}

func TestMetrics_RecordError(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordError(ctx, "app.Echo", "TIMEOUT")
	m.RecordError(ctx, "app.Echo", "TIMEOUT")

	got := collect(t, reader)
	errs, ok := got["mediator.errors.total"].Data.(metricdata.Sum[int64])
	if !ok || len(errs.DataPoints) != 1 {
		t.Fatalf("expected one error data point, got %+v", got["mediator.errors.total"].Data)
	}
	if errs.DataPoints[0].Value != 2 {
		t.Errorf("expected 2 errors, got %d", errs.DataPoints[0].Value)
	}
	if v, _ := errs.DataPoints[0].Attributes.Value("code"); v.AsString() != "TIMEOUT" {
		t.Errorf("expected code TIMEOUT, got %v", v)
	}
}
