package logging

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/narender/webapp-telemetry/config"
)

func countOtelHooks(logger *logrus.Logger) int {
	seen := map[*OtelHook]bool{}
	for _, hooks := range logger.Hooks {
		for _, h := range hooks {
			if oh, ok := h.(*OtelHook); ok {
				seen[oh] = true
			}
		}
	}
	return len(seen)
}

func TestAttachOtelHookInstallsOnce(t *testing.T) {
	logger := logrus.StandardLogger()
	prev := logger.Hooks
	logger.ReplaceHooks(make(logrus.LevelHooks))
	t.Cleanup(func() { logger.ReplaceHooks(prev) })

	AttachOtelHook()
	AttachOtelHook()
	AttachOtelHook()

	assert.Equal(t, 1, countOtelHooks(logger))
}

func TestOtelHookStampsTraceContext(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("af7651916cd43dd8448eb211c80319c1")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("b7ad6b7169203331")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	hook := NewOtelHook()
	fired := logrus.NewEntry(logrus.StandardLogger())
	fired.Context = ctx
	fired.Message = "correlated message"
	fired.Level = logrus.InfoLevel
	fired.Data = logrus.Fields{"component": "test"}

	require.NoError(t, hook.Fire(fired))

	assert.Equal(t, "af7651916cd43dd8448eb211c80319c1", fired.Data["trace_id"])
	assert.Equal(t, "b7ad6b7169203331", fired.Data["span_id"])
	assert.Equal(t, "01", fired.Data["trace_flags"])
}

func TestOtelHookNoContextLeavesEntryAlone(t *testing.T) {
	hook := NewOtelHook()
	fired := logrus.NewEntry(logrus.StandardLogger())
	fired.Message = "plain message"
	fired.Level = logrus.WarnLevel
	fired.Data = logrus.Fields{}

	require.NoError(t, hook.Fire(fired))

	assert.NotContains(t, fired.Data, "trace_id")
	assert.NotContains(t, fired.Data, "span_id")
}

func TestSetupLogrusLevels(t *testing.T) {
	logger := SetupLogrus(config.NewConfig(config.WithLogLevel("debug"), config.WithLogFormat("json")))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger = SetupLogrus(config.NewConfig(config.WithLogLevel("not-a-level")))
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
