package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-factory/internal/config"
	"car-factory/internal/dealer"
	"car-factory/internal/logger"
	"car-factory/internal/middleware"
	"car-factory/internal/plant"

	"github.com/gorilla/mux"
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
	log.Info("Starting car dealer",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("balancer", cfg.BalancerType),
		zap.Int("factories", len(cfg.Factories)),
		zap.String("log_level", cfg.LogLevel),
	)

	balancer, err := plant.Build(cfg.Factories, cfg.BalancerType, log)
	if err != nil {
		log.Fatal("Failed to build plant", zap.Error(err))
	}

	handler := dealer.NewHandler(balancer, log)

	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, log))
	handler.Register(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped", zap.Uint64("cars_routed", balancer.Produced()))
}
