package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"payrelay/internal/config"
	"payrelay/internal/payway"
	"payrelay/internal/router"
)

func main() {
	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// --- Config ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// --- Gateway adapter ---
	merchant := payway.Config{
		MerchantID:  cfg.Gateway.MerchantID,
		APIKey:      cfg.Gateway.APIKey,
		Currency:    cfg.Gateway.Currency,
		FrontendURL: cfg.URLs.Frontend,
		BackendURL:  cfg.URLs.Backend,
	}
	gateway, err := payway.NewClient(merchant, cfg.Gateway.PurchaseURL, cfg.Gateway.Timeout, logger)
	if err != nil {
		logger.Fatal("Failed to create gateway client", zap.Error(err))
	}
	verifier, err := payway.NewVerifier(merchant)
	if err != nil {
		logger.Fatal("Failed to create callback verifier", zap.Error(err))
	}

	// --- Echo ---
	e := echo.New()
	e.HideBanner = true

	// --- Routes ---
	router.Setup(e, cfg, gateway, verifier, logger)

	// --- Start Server ---
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info("Starting payment relay", zap.String("addr", addr))
		if err := e.Start(addr); err != nil {
			logger.Info("Server stopped", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
