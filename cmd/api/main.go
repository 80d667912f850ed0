// ABOUTME: Main entry point for the Rotter News API server
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

	"github.com/prometheus/client_golang/prometheus"
	"rotter-news-api/api"
	"rotter-news-api/api/handlers"
	"rotter-news-api/api/middleware"
	"rotter-news-api/core/article"
	"rotter-news-api/core/extract"
	"rotter-news-api/core/feed"
	"rotter-news-api/core/interfaces"
	stdhttp "rotter-news-api/infrastructure/http/standard"
	"rotter-news-api/infrastructure/logger/structured"
	"rotter-news-api/infrastructure/metrics"
	"rotter-news-api/pkg/config"
	"rotter-news-api/pkg/featureflags"
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

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info("Starting Rotter News API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"feed_url":   cfg.Feed.URL,
		"strategies": cfg.Extraction.Strategies,
	})

	flags := featureflags.NewEnvManager("FEATURE_")

	// The feed path may retry; the article path never does, its strategies
	// carry their own deadlines.
	feedClient := stdhttp.NewStandardHTTPClient(cfg.Feed.Timeout,
		stdhttp.WithRetries(cfg.Feed.Retries),
		stdhttp.WithUserAgent(cfg.Extraction.UserAgent),
	)
	articleClient := stdhttp.NewStandardHTTPClient(longestTimeout(cfg.Extraction),
		stdhttp.WithUserAgent(cfg.Extraction.UserAgent),
		stdhttp.WithMaxBodyBytes(cfg.Extraction.MaxBodyBytes),
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{Logger: logger}),
	)

	feedService := feed.NewFeedService(interfaces.Dependencies{
		HTTPClient: feedClient,
		Logger:     logger,
	}, cfg.Feed.URL)

	registry := prometheus.NewRegistry()
	extractionMetrics := metrics.New(registry)

	articleService, err := buildArticleService(cfg.Extraction, interfaces.Dependencies{
		HTTPClient: articleClient,
		Logger:     logger,
		Metrics:    extractionMetrics,
	})
	if err != nil {
		logger.Error("Failed to build article strategies", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	apiConfig := api.APIConfig{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	}
	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		defer limiter.Close()
		if err := limiter.TrustProxies(cfg.Server.TrustedProxies); err != nil {
			logger.Error("Invalid TRUSTED_PROXIES", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		apiConfig.RateLimiter = limiter
	}
	humaAPI, router := api.NewAPI(apiConfig)

	// Create and register handlers
	handlers.NewFeedHandler(feedService, cfg.Feed.DefaultHours, cfg.Feed.MaxHours).RegisterRoutes(humaAPI)
	handlers.NewArticleHandler(articleService, flags).RegisterRoutes(humaAPI)
	handlers.RegisterHealth(humaAPI)
	if cfg.Server.MetricsEnabled {
		router.Handle("/metrics", metrics.Handler(registry))
	}

	logger.Info("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// buildArticleService turns the extraction settings into the immutable
// extractor config, strategy list and chain.
func buildArticleService(ec config.ExtractionConfig, deps interfaces.Dependencies) (*article.Service, error) {
	extractCfg := extract.DefaultConfig()
	if len(ec.Markers) > 0 {
		extractCfg.Markers = ec.Markers
	}
	extractCfg.Encodings = ec.Encodings
	extractCfg.PreferValidUTF8 = ec.PreferValidUTF8

	strategies, err := article.BuildStrategies(ec.Strategies, article.Settings{
		Client:         deps.HTTPClient,
		Extract:        extractCfg,
		Timeouts:       ec.Timeouts,
		RateLimits:     ec.RateLimits,
		UserAgent:      ec.UserAgent,
		AcceptLanguage: ec.AcceptLanguage,
		Referer:        ec.Referer,
		ReaderBaseURL:  ec.ReaderBaseURL,
		ProxyBaseURL:   ec.ProxyBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("building strategies: %w", err)
	}

	chain := article.NewChain(strategies, article.ChainConfig{
		MinBodyLength: ec.MinBodyLength,
		Logger:        deps.Logger,
		Metrics:       deps.Metrics,
	})
	return article.NewService(nil, chain), nil
}

// longestTimeout bounds the shared article client so no strategy deadline is
// cut short by it.
func longestTimeout(ec config.ExtractionConfig) time.Duration {
	longest := 20 * time.Second
	for _, d := range ec.Timeouts {
		if d > longest {
			longest = d
		}
	}
	return longest + 5*time.Second
}
