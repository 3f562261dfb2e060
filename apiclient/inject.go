package apiclient

import (
	"context"
	"net/http"

	"github.com/narender/webapp-telemetry/telemetry/propagator"
)

// InjectHeaders serializes the active trace context from ctx into W3C
// propagation headers and overlays them onto headers.
//
// When no context is active the serialization is empty and the input is
// returned untouched: untraced calls are never rewritten. Otherwise a new
// header set is returned with entries carrying no values dropped and the
// freshly produced trace headers winning on any key collision. The input is
// never mutated and the function never fails.
func InjectHeaders(ctx context.Context, headers http.Header) http.Header {
	carrier := propagator.Inject(ctx)
	if len(carrier) == 0 {
		return headers
	}

	merged := make(http.Header, len(headers)+len(carrier))
	for key, values := range headers {
		if len(values) == 0 {
			continue
		}
		merged[key] = append([]string(nil), values...)
	}
	for key, value := range carrier {
		merged.Set(key, value)
	}
	return merged
}
