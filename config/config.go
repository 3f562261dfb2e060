package config

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Environment variable keys read by Load.
const (
	envServiceName          = "OTEL_SERVICE_NAME"
	envServiceVersion       = "SERVICE_VERSION"
	envEnvironment          = "ENVIRONMENT"
	envOtelExporterEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelExporterInsecure = "OTEL_EXPORTER_INSECURE"
	envOtelSampleRatio      = "OTEL_SAMPLE_RATIO"
	envOtelExportTimeoutMS  = "OTEL_EXPORT_TIMEOUT_MS"
	envOtelBatchTimeoutMS   = "OTEL_BATCH_TIMEOUT_MS"
	envAPIBaseURL           = "API_BASE_URL"
	envLogLevel             = "LOG_LEVEL"
	envLogFormat            = "LOG_FORMAT"
	envServerPort           = "SERVER_PORT"
	envShutdownTotalSec     = "SHUTDOWN_TOTAL_TIMEOUT_SEC"
	envShutdownServerSec    = "SHUTDOWN_SERVER_TIMEOUT_SEC"
	envShutdownOtelSec      = "SHUTDOWN_OTEL_MIN_TIMEOUT_SEC"
)

// Config holds all configuration settings for the telemetry glue layer
// and the demo application around it.
type Config struct {
	// Service information
	ServiceName    string
	ServiceVersion string
	Environment    string

	// OpenTelemetry configuration
	OtelEndpoint      string
	OtelInsecure      bool
	OtelSampleRatio   float64
	OtelExportTimeout time.Duration
	OtelBatchTimeout  time.Duration

	// APIBaseURL scopes outgoing trace-context propagation: only requests
	// whose destination matches this origin receive traceparent headers.
	APIBaseURL string

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Application settings
	ServerPort string

	// Shutdown timeouts
	ShutdownTotalTimeout   time.Duration
	ShutdownServerTimeout  time.Duration
	ShutdownOtelMinTimeout time.Duration
}

// NewConfig creates a Config with defaults and applies the provided options.
// Environment variables are not consulted; see Load for that.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		ServiceName:            "webapp-frontend",
		ServiceVersion:         "dev",
		Environment:            "local",
		OtelEndpoint:           "http://localhost:4317",
		OtelInsecure:           false,
		OtelSampleRatio:        1.0,
		OtelExportTimeout:      5 * time.Second,
		OtelBatchTimeout:       5 * time.Second,
		APIBaseURL:             "http://localhost:8000",
		LogLevel:               "info",
		LogFormat:              "text",
		ServerPort:             "8000",
		ShutdownTotalTimeout:   30 * time.Second,
		ShutdownServerTimeout:  10 * time.Second,
		ShutdownOtelMinTimeout: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load builds a Config from environment variables layered over defaults.
// Options are applied last, so explicit options win over the environment.
func Load(opts ...Option) *Config {
	v := viper.New()
	v.AutomaticEnv()

	c := NewConfig()
	v.SetDefault(envServiceName, c.ServiceName)
	v.SetDefault(envServiceVersion, c.ServiceVersion)
	v.SetDefault(envEnvironment, c.Environment)
	v.SetDefault(envOtelExporterEndpoint, c.OtelEndpoint)
	v.SetDefault(envOtelExporterInsecure, c.OtelInsecure)
	v.SetDefault(envOtelSampleRatio, c.OtelSampleRatio)
	v.SetDefault(envOtelExportTimeoutMS, int(c.OtelExportTimeout/time.Millisecond))
	v.SetDefault(envOtelBatchTimeoutMS, int(c.OtelBatchTimeout/time.Millisecond))
	v.SetDefault(envAPIBaseURL, c.APIBaseURL)
	v.SetDefault(envLogLevel, c.LogLevel)
	v.SetDefault(envLogFormat, c.LogFormat)
	v.SetDefault(envServerPort, c.ServerPort)
	v.SetDefault(envShutdownTotalSec, int(c.ShutdownTotalTimeout/time.Second))
	v.SetDefault(envShutdownServerSec, int(c.ShutdownServerTimeout/time.Second))
	v.SetDefault(envShutdownOtelSec, int(c.ShutdownOtelMinTimeout/time.Second))

	c.ServiceName = v.GetString(envServiceName)
	c.ServiceVersion = v.GetString(envServiceVersion)
	c.Environment = strings.ToLower(v.GetString(envEnvironment))
	c.OtelEndpoint = v.GetString(envOtelExporterEndpoint)
	c.OtelInsecure = v.GetBool(envOtelExporterInsecure)
	c.OtelSampleRatio = v.GetFloat64(envOtelSampleRatio)
	c.OtelExportTimeout = time.Duration(v.GetInt(envOtelExportTimeoutMS)) * time.Millisecond
	c.OtelBatchTimeout = time.Duration(v.GetInt(envOtelBatchTimeoutMS)) * time.Millisecond
	c.APIBaseURL = v.GetString(envAPIBaseURL)
	c.LogLevel = strings.ToLower(v.GetString(envLogLevel))
	c.LogFormat = strings.ToLower(v.GetString(envLogFormat))
	c.ServerPort = v.GetString(envServerPort)
	c.ShutdownTotalTimeout = time.Duration(v.GetInt(envShutdownTotalSec)) * time.Second
	c.ShutdownServerTimeout = time.Duration(v.GetInt(envShutdownServerSec)) * time.Second
	c.ShutdownOtelMinTimeout = time.Duration(v.GetInt(envShutdownOtelSec)) * time.Second

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Validate checks the configuration and returns all violations found.
func (c *Config) Validate() []error {
	validator := NewValidator()

	validator.RequireNonEmpty("ServiceName", c.ServiceName)
	validator.RequireNonEmpty("ServiceVersion", c.ServiceVersion)
	validator.RequireNonEmpty("OtelEndpoint", c.OtelEndpoint)
	validator.RequireNonEmpty("APIBaseURL", c.APIBaseURL)
	validator.RequireNonEmpty("LogLevel", c.LogLevel)
	validator.RequireNonEmpty("LogFormat", c.LogFormat)

	validator.RequireOneOf("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "error", "fatal", "panic"})
	validator.RequireOneOf("LogFormat", c.LogFormat, []string{"text", "json"})

	RequireInRange(validator, "OtelSampleRatio", c.OtelSampleRatio, 0.0, 1.0)

	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		validator.AddError("APIBaseURL", "must be an absolute http(s) URL")
	}

	return validator.Errors()
}

// Log logs the effective configuration at startup.
func (c *Config) Log() {
	logrus.WithFields(logrus.Fields{
		"service_name":      c.ServiceName,
		"service_version":   c.ServiceVersion,
		"environment":       c.Environment,
		"otel_endpoint":     c.OtelEndpoint,
		"otel_insecure":     c.OtelInsecure,
		"otel_sample_ratio": c.OtelSampleRatio,
		"api_base_url":      c.APIBaseURL,
		"log_level":         c.LogLevel,
		"log_format":        c.LogFormat,
		"server_port":       c.ServerPort,
	}).Info("Configuration loaded")
}
