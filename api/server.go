// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and the middleware stack shared by all handlers

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"rotter-news-api/api/middleware"
	"rotter-news-api/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger      interfaces.Logger
	CORSOrigins []string
	// RateLimiter is applied per client IP when set
	RateLimiter *middleware.RateLimiter
}

// NewConfig returns the Huma configuration used by the server. Response bodies
// carry only their declared fields: the default schema-link hook, which adds
// a "$schema" key and Link header, is not installed.
func NewConfig() huma.Config {
	config := huma.DefaultConfig("Rotter News API", "1.0.0")
	config.Info.Description = "News ticker feed and on-demand article text extraction for rotter.net"
	config.CreateHooks = nil
	return config
}

// NewAPI creates the chi router, installs middleware and wraps it in a Huma API.
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS should be first so preflight requests never hit the limiter
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Burst"},
		MaxAge:         300,
	}))
	router.Use(chimiddleware.Recoverer)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	api := humachi.New(router, NewConfig())

	return api, router
}
