package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type httpMetrics struct {
	requests metric.Int64Counter
}

func newHTTPMetrics() *httpMetrics {
	meter := otel.Meter(TracerName)
	// Instrument creation only fails on invalid names; a nil counter is skipped.
	requests, _ := meter.Int64Counter("http.server.requests",
		metric.WithDescription("HTTP requests by route and status"),
	)
	return &httpMetrics{requests: requests}
}

func (m *httpMetrics) record(ctx context.Context, method, route string, status int) {
	if m.requests == nil {
		return
	}
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	))
}

// Counter is a named counter with a fixed instrumentation scope
type Counter struct {
	c metric.Int64Counter
}

// NewCounter creates a counter on the global meter provider
func NewCounter(name, description string) *Counter {
	c, _ := otel.Meter(TracerName).Int64Counter(name, metric.WithDescription(description))
	return &Counter{c: c}
}

// Inc adds one with the given attributes
func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	if c == nil || c.c == nil {
		return
	}
	c.c.Add(ctx, 1, metric.WithAttributes(attrs...))
}
