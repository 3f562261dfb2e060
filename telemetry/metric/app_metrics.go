package metric

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/narender/webapp-telemetry/telemetry/metric"

const (
	uncaughtErrorsTotal   = "app.uncaught_errors.total"
	outgoingRequestsTotal = "http.client.request.count"
)

// AppMetrics bundles the counters this library records on its own behalf.
type AppMetrics struct {
	uncaughtErrors   otelmetric.Int64Counter
	outgoingRequests otelmetric.Int64Counter
}

var (
	defaultMetrics     *AppMetrics
	defaultMetricsOnce sync.Once
)

// Default returns the shared AppMetrics instance, creating it lazily from
// the global meter provider. Before telemetry initialization the counters
// are no-ops.
func Default() *AppMetrics {
	defaultMetricsOnce.Do(func() {
		m, err := NewAppMetrics()
		if err != nil {
			m = &AppMetrics{}
		}
		defaultMetrics = m
	})
	return defaultMetrics
}

// NewAppMetrics creates the library's counters on the global meter.
func NewAppMetrics() (*AppMetrics, error) {
	meter := otel.Meter(instrumentationName)
	m := &AppMetrics{}
	var err error

	m.uncaughtErrors, err = meter.Int64Counter(
		uncaughtErrorsTotal,
		otelmetric.WithDescription("Count of uncaught errors converted into diagnostic spans"),
		otelmetric.WithUnit("{errors}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", uncaughtErrorsTotal, err)
	}

	m.outgoingRequests, err = meter.Int64Counter(
		outgoingRequestsTotal,
		otelmetric.WithDescription("Number of outgoing HTTP requests issued through the shared API client"),
		otelmetric.WithUnit("{requests}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", outgoingRequestsTotal, err)
	}

	return m, nil
}

// RecordUncaughtError counts one uncaught failure.
func (m *AppMetrics) RecordUncaughtError(ctx context.Context, attributes ...attribute.KeyValue) {
	if m == nil || m.uncaughtErrors == nil {
		return
	}
	m.uncaughtErrors.Add(ctx, 1, otelmetric.WithAttributes(attributes...))
}

// RecordOutgoingRequest counts one outgoing request through the API client.
func (m *AppMetrics) RecordOutgoingRequest(ctx context.Context, attributes ...attribute.KeyValue) {
	if m == nil || m.outgoingRequests == nil {
		return
	}
	m.outgoingRequests.Add(ctx, 1, otelmetric.WithAttributes(attributes...))
}
