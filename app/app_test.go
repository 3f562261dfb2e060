package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/narender/webapp-telemetry/apiclient"
	"github.com/narender/webapp-telemetry/config"
	"github.com/narender/webapp-telemetry/telemetry/propagator"
)

func withSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func TestHealthEndpoint(t *testing.T) {
	fiberApp := New(config.NewConfig())

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCurrentUserEndpoint(t *testing.T) {
	withSpanRecorder(t)
	fiberApp := New(config.NewConfig())

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Data User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "demo", payload.Data.ID)
	assert.True(t, payload.Data.IsActive)
}

func TestBoomEndpointReturnsEnvelope(t *testing.T) {
	withSpanRecorder(t)
	fiberApp := New(config.NewConfig())

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "SYSTEM_PANIC")
}

// TestTraceContinuityThroughClient drives a real request through the
// instrumented client transport into the running server and checks that both
// sides land in the same trace.
func TestTraceContinuityThroughClient(t *testing.T) {
	recorder := withSpanRecorder(t)
	propagator.Setup()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	baseURL := fmt.Sprintf("http://%s", ln.Addr().String())

	cfg := config.NewConfig(config.WithAPIBaseURL(baseURL))
	fiberApp := New(cfg)
	go func() {
		_ = fiberApp.Listener(ln)
	}()
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = fiberApp.ShutdownWithContext(shutdownCtx)
	})

	client := &http.Client{Transport: apiclient.NewTransport(nil, cfg)}

	ctx, root := otel.Tracer("app-test").Start(context.Background(), "client-root")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/users/me", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	root.End()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	rootTrace := root.SpanContext().TraceID()
	var serverSpanSeen bool
	for _, span := range recorder.Ended() {
		if span.SpanKind() == oteltrace.SpanKindServer {
			serverSpanSeen = true
			assert.Equal(t, rootTrace, span.SpanContext().TraceID())
		}
	}
	assert.True(t, serverSpanSeen, "expected a server-side span in the same trace")
}
