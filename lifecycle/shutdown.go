package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narender/webapp-telemetry/config"
)

// WaitForGracefulShutdown blocks until a SIGINT or SIGTERM signal is
// received, then shuts down the server and telemetry in that order, each
// under its own timeout and all under the configured total timeout.
func WaitForGracefulShutdown(cfg *config.Config, server Shutdowner, telemetryShutdown func(context.Context) error) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger := logrus.StandardLogger()
	logger.WithField("signal", sig.String()).Info("Received shutdown signal, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTotalTimeout)
	defer cancel()

	var shutdownErrs error
	shutdownTasks := []struct {
		name     string
		timeout  time.Duration
		shutdown func(context.Context) error
	}{
		{"server", cfg.ShutdownServerTimeout, server.Shutdown},
		{"telemetry", cfg.ShutdownOtelMinTimeout, telemetryShutdown},
	}

	for _, task := range shutdownTasks {
		if task.shutdown == nil {
			continue
		}

		taskCtx, taskCancel := context.WithTimeout(shutdownCtx, task.timeout)
		logger.Infof("Shutting down %s (timeout: %s)", task.name, task.timeout)
		if err := task.shutdown(taskCtx); err != nil {
			logger.WithError(err).Errorf("Error during %s shutdown", task.name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("%s shutdown error: %w", task.name, err))
		} else {
			logger.Infof("%s shutdown complete", task.name)
		}
		taskCancel()

		if shutdownCtx.Err() != nil {
			logger.Warnf("Overall shutdown timeout (%s) exceeded during %s shutdown", cfg.ShutdownTotalTimeout, task.name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("overall shutdown timeout exceeded: %w", shutdownCtx.Err()))
			break
		}
	}

	if shutdownErrs != nil {
		logger.WithError(shutdownErrs).Error("Application shutdown completed with errors")
		os.Exit(1)
	}
	logger.Info("Application shutdown completed successfully")
	os.Exit(0)
}
