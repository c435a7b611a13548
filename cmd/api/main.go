// ABOUTME: Main entry point for the article labels API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"article-labels-api/api"
	"article-labels-api/api/handlers"
	"article-labels-api/core/export"
	"article-labels-api/core/interfaces"
	"article-labels-api/core/symbol"
	logrusLogger "article-labels-api/infrastructure/logger/logrus"
	"article-labels-api/pkg/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logrusLogger.NewLogrusLogger()
	logger.SetLevel(cfg.Server.LogLevel)
	if cfg.Server.LogFile != "" {
		logger.SetOutput(&lumberjack.Logger{
			Filename:   cfg.Server.LogFile,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	logger.Info("Starting Article Labels API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"export_dir": cfg.Export.Dir,
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		Logger: logger,
	}

	// Create services
	renderer := symbol.NewRenderer(deps)
	exporter := export.NewExporter(deps, cfg.Export.Dir)

	// Render defaults come from configuration
	defaults, err := cfg.Label.RenderOptions()
	if err != nil {
		log.Fatalf("Invalid label configuration: %v", err)
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	labelHandler := handlers.NewLabelHandler(renderer, exporter, defaults)
	labelHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler("article-labels-api", "1.0.0")
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    __          __         __        ___    ____  ____
   / /   ____ _/ /_  ___  / /____   /   |  / __ \/  _/
  / /   / __ '/ __ \/ _ \/ / ___/  / /| | / /_/ // /
 / /___/ /_/ / /_/ /  __/ (__  )  / ___ |/ ____// /
/_____/\__,_/_.___/\___/_/____/  /_/  |_/_/   /___/
	`)
}
