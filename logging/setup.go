package logging

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narender/webapp-telemetry/config"
)

// SetupLogrus configures the standard logrus logger from config: level,
// text or json formatter, stderr output.
func SetupLogrus(cfg *config.Config) *logrus.Logger {
	logger := logrus.StandardLogger()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info': %v", cfg.LogLevel, err)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		logger.Warnf("Invalid log format '%s', defaulting to 'text'", cfg.LogFormat)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	}
	logger.SetOutput(os.Stderr)

	return logger
}

// AttachOtelHook installs the OTel bridge hook on the standard logger so
// every entry is stamped with trace context and mirrored to the collector.
// Calling it more than once installs a single hook.
func AttachOtelHook() {
	logger := logrus.StandardLogger()
	for _, hooks := range logger.Hooks {
		for _, h := range hooks {
			if _, ok := h.(*OtelHook); ok {
				return
			}
		}
	}
	logger.AddHook(NewOtelHook())
}
