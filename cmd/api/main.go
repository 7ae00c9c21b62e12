// ABOUTME: Main entry point for the Feed Resolver API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feed-resolver/api"
	"feed-resolver/api/middleware"
	"feed-resolver/core/fetcher"
	"feed-resolver/core/interfaces"
	stdhttp "feed-resolver/infrastructure/http/standard"
	"feed-resolver/infrastructure/logger/structured"
	"feed-resolver/infrastructure/metrics"
	"feed-resolver/infrastructure/parser/feedparser"
	"feed-resolver/pkg/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.New(structured.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("Starting Feed Resolver API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"http_timeout": cfg.HTTP.Timeout.String(),
		"max_attempts": cfg.HTTP.MaxAttempts,
		"metrics":      cfg.Metrics.Enabled,
	})

	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:     cfg.HTTP.Timeout,
		UserAgent:   cfg.HTTP.UserAgent,
		MaxAttempts: cfg.HTTP.MaxAttempts,
		Client: &http.Client{
			Transport: &middleware.LoggingRoundTripper{
				Transport: http.DefaultTransport,
				Logger:    logger,
			},
		},
	})

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Parser:     feedparser.NewParser(),
		Logger:     logger.With(map[string]interface{}{"component": "fetcher"}),
	}

	apiConfig := api.APIConfig{
		Logger:       logger,
		MaxBatchURLs: cfg.Server.MaxBatchURLs,
	}
	if cfg.Metrics.Enabled {
		recorder := metrics.NewRecorder()
		deps.Metrics = recorder
		apiConfig.MetricsHandler = recorder.Handler()
	}
	apiConfig.Resolver = fetcher.NewFetcher(deps)

	_, router := api.NewAPIWithMiddleware(apiConfig)

	// A batch runs its resolutions in parallel, so one request needs about
	// one fetch timeout per hop.
	writeTimeout := cfg.HTTP.Timeout*time.Duration(fetcher.MaxHops+1) + 15*time.Second

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

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
