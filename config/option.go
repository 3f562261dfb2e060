package config

import "time"

// Option is a function that configures a Config
type Option func(*Config)

// WithServiceName sets the logical service name reported in telemetry
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithServiceVersion sets the service version
func WithServiceVersion(version string) Option {
	return func(c *Config) {
		c.ServiceVersion = version
	}
}

// WithEnvironment sets the deployment environment label
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithOtelEndpoint sets the OpenTelemetry collector endpoint
func WithOtelEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.OtelEndpoint = endpoint
	}
}

// WithOtelInsecure sets whether the OTLP exporters use an insecure connection
func WithOtelInsecure(insecure bool) Option {
	return func(c *Config) {
		c.OtelInsecure = insecure
	}
}

// WithOtelSampleRatio sets the trace sampling ratio (0.0-1.0)
func WithOtelSampleRatio(ratio float64) Option {
	return func(c *Config) {
		c.OtelSampleRatio = ratio
	}
}

// WithOtelExportTimeout bounds how long a single export may take
func WithOtelExportTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.OtelExportTimeout = timeout
	}
}

// WithAPIBaseURL sets the first-party origin that receives trace headers
func WithAPIBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.APIBaseURL = baseURL
	}
}

// WithLogLevel sets the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the log format
func WithLogFormat(format string) Option {
	return func(c *Config) {
		c.LogFormat = format
	}
}

// WithServerPort sets the demo application listen port
func WithServerPort(port string) Option {
	return func(c *Config) {
		c.ServerPort = port
	}
}
