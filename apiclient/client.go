// Package apiclient owns the shared HTTP client used for first-party API
// calls and the trace-context injection hook attached to it. Registration
// and telemetry bootstrap are independent: registering before telemetry is
// up simply leaves requests unmodified until a trace context exists.
package apiclient

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/narender/webapp-telemetry/config"
)

var (
	registered atomic.Bool

	sharedClient = &http.Client{
		Timeout: 30 * time.Second,
	}
)

// Client returns the shared API client. Call Register first to attach the
// trace-context transport.
func Client() *http.Client {
	return sharedClient
}

// Register attaches the header-injecting transport to the shared client.
// At most one transport is ever installed, regardless of how many entry
// points call this.
func Register(opts ...config.Option) {
	if !registered.CompareAndSwap(false, true) {
		return
	}

	cfg := config.Load(opts...)
	sharedClient.Transport = NewTransport(sharedClient.Transport, cfg)
}

// Registered reports whether the injection hook has been installed.
func Registered() bool {
	return registered.Load()
}
