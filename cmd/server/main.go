package main

import (
	"github.com/mlservice/server/internal/config"
	"github.com/mlservice/server/internal/logger"
)

func main() {
	logger.Info("starting ml-service")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	srv := NewServer(cfg)

	if err := srv.Run(); err != nil {
		logger.FatalErr(err, "server failed to start")
	}

	logger.Info("server stopped")
}
