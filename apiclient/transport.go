package apiclient

import (
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/narender/webapp-telemetry/config"
	"github.com/narender/webapp-telemetry/telemetry/exporter"
	telmetric "github.com/narender/webapp-telemetry/telemetry/metric"
)

// Transport decides, per outgoing request, whether trace context may travel
// with it:
//
//   - requests to the collector itself bypass instrumentation entirely, so
//     exporting traces never produces traces about traces;
//   - only first-party destinations (the configured API origin) receive
//     propagation headers and an auto-created client span; third-party
//     requests pass through untouched.
type Transport struct {
	firstParty    *url.URL
	collectorHost string
	traced        http.RoundTripper
	passthrough   http.RoundTripper
}

var _ http.RoundTripper = (*Transport)(nil)

// NewTransport wraps base with scoped instrumentation per cfg.
func NewTransport(base http.RoundTripper, cfg *config.Config) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}

	firstParty, err := url.Parse(cfg.APIBaseURL)
	if err != nil || firstParty.Host == "" {
		logrus.WithField("api_base_url", cfg.APIBaseURL).Warn("Invalid API base URL, outgoing requests will not carry trace headers")
		firstParty = nil
	}

	collectorHost, _ := exporter.NormalizeEndpoint(cfg.OtelEndpoint, cfg.OtelInsecure)

	return &Transport{
		firstParty:    firstParty,
		collectorHost: collectorHost,
		traced:        otelhttp.NewTransport(base),
		passthrough:   base,
	}
}

// RoundTrip implements http.RoundTripper. Header injection happens
// synchronously before dispatch, so first-party requests are guaranteed to
// carry the active context by the time they leave the process.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.isCollector(req.URL) || !t.isFirstParty(req.URL) {
		return t.passthrough.RoundTrip(req)
	}

	ctx := req.Context()
	out := req.Clone(ctx)
	out.Header = InjectHeaders(ctx, out.Header)

	telmetric.Default().RecordOutgoingRequest(ctx)

	return t.traced.RoundTrip(out)
}

func (t *Transport) isFirstParty(u *url.URL) bool {
	return t.firstParty != nil && u.Scheme == t.firstParty.Scheme && u.Host == t.firstParty.Host
}

func (t *Transport) isCollector(u *url.URL) bool {
	return t.collectorHost != "" && u.Host == t.collectorHost
}
