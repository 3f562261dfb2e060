package exporter

import "strings"

// NormalizeEndpoint converts a configured collector URL into the host:port
// form the OTLP gRPC exporters expect. Trailing slashes are stripped, an
// explicit http:// scheme forces insecure transport, and https:// is
// stripped while keeping secure transport.
func NormalizeEndpoint(raw string, insecure bool) (string, bool) {
	endpoint := strings.TrimRight(strings.TrimSpace(raw), "/")

	switch {
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), true
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), insecure
	default:
		return endpoint, insecure
	}
}
