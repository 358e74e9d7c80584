package main

import (
	"os"

	"car-factory/internal/config"
	"car-factory/internal/demo"
	"car-factory/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		zap.L().Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer logger.Sync()

	log := logger.Global()
	log.Debug("Starting demo",
		zap.String("balancer", cfg.BalancerType),
		zap.Int("factories", len(cfg.Factories)),
		zap.Int("requests", cfg.Requests),
	)

	if err := demo.Run(cfg, os.Stdout, log); err != nil {
		log.Fatal("Demo failed", zap.Error(err))
	}
}
