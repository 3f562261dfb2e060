package telemetry

import (
	"context"

	telmetric "github.com/narender/webapp-telemetry/telemetry/metric"
	teltrace "github.com/narender/webapp-telemetry/telemetry/trace"
)

// Go runs fn in a new goroutine with a recover guard. A panic in fn is
// converted into a diagnostic span and counted, so detached work cannot
// fail invisibly or take the process down. Counterpart of the panic
// recovery middleware for work outside a request.
func Go(ctx context.Context, fn func(context.Context)) {
	if ctx == nil {
		ctx = context.Background()
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				teltrace.RecordUncaught(ctx, r, nil)
				telmetric.Default().RecordUncaughtError(ctx)
			}
		}()
		fn(ctx)
	}()
}
