package main

import (
	"github.com/osse101/ItemRegistry_Go/internal/config"
	"github.com/osse101/ItemRegistry_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only for local runs
	addSource := cfg.IsLocal()

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
