// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"feed-resolver/api/handlers"
	"feed-resolver/api/middleware"
	"feed-resolver/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Resolver serves /resolve; routes are skipped when nil
	Resolver handlers.Resolver

	// MaxBatchURLs caps the URLs per POST /resolve request
	MaxBatchURLs int

	// MetricsHandler is mounted at /metrics when set
	MetricsHandler http.Handler
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware and routes configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run before anything that can reject a preflight
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}).Handler)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.MetricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	config := huma.DefaultConfig("Feed Resolver API", "1.0.0")
	config.Info.Description = "Resolves feed and web page URLs to parsed RSS/Atom feeds"

	api := humachi.New(router, config)

	handlers.RegisterHealthRoutes(api)
	if cfg.Resolver != nil {
		handlers.NewResolveHandler(cfg.Resolver, cfg.MaxBatchURLs, cfg.Logger).RegisterRoutes(api)
	}

	// The OpenAPI spec is automatically available at /openapi.json
	// The docs UI is automatically available at /docs
	return api, router
}
