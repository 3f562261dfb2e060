// Entry point for the demo webapp wired into the telemetry stack.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/narender/webapp-telemetry/apiclient"
	"github.com/narender/webapp-telemetry/app"
	"github.com/narender/webapp-telemetry/config"
	"github.com/narender/webapp-telemetry/lifecycle"
	"github.com/narender/webapp-telemetry/logging"
	"github.com/narender/webapp-telemetry/telemetry"
)

func main() {
	cfg := config.Load()
	logging.SetupLogrus(cfg)
	cfg.Log()

	telemetry.Initialize()
	apiclient.Register()

	fiberApp := app.New(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	go func() {
		logrus.WithField("address", addr).Info("Server starting to listen")
		if err := fiberApp.Listen(addr); err != nil {
			logrus.WithError(err).Fatal("Server listener failed")
		}
	}()

	lifecycle.WaitForGracefulShutdown(cfg,
		&lifecycle.FiberShutdownAdapter{App: fiberApp},
		telemetry.Shutdown,
	)
}
