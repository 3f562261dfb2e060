package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/narender/webapp-telemetry/config"
)

func TestInitializeRunsOnce(t *testing.T) {
	require.False(t, Initialized())

	Initialize(
		config.WithServiceName("telemetry-test"),
		config.WithOtelEndpoint("http://localhost:4317"),
	)
	require.True(t, Initialized())

	tp := otel.GetTracerProvider()
	require.NotNil(t, tp)

	// A second call must neither replace the provider nor re-run setup.
	Initialize(config.WithServiceName("other-name"))
	assert.True(t, Initialized())
	assert.Same(t, tp, otel.GetTracerProvider())
}

func TestShutdownFlushesAndIsIdempotent(t *testing.T) {
	Initialize()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// No collector is listening; the exporters drop their batches on the
	// floor but shutdown itself must not hang or panic.
	_ = Shutdown(ctx)

	assert.NoError(t, Shutdown(context.Background()))
}
