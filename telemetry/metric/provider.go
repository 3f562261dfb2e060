package metric

import (
	"context"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// NewMeterProvider builds a meter provider with a periodic reader feeding
// the exporter.
func NewMeterProvider(res *resource.Resource, exporter sdkmetric.Exporter, interval time.Duration) (*sdkmetric.MeterProvider, func(context.Context) error) {
	if interval <= 0 {
		interval = 15 * time.Second
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)

	return mp, mp.Shutdown
}
