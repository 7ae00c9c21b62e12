// Package api provides the HTTP API layer for the feed resolver.
// It uses the Huma framework on a chi router for OpenAPI documentation
// and request validation.
//
// # Architecture
//
// - server.go: Huma API configuration, middleware and route setup
// - handlers/: POST and GET /resolve, GET /health
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging with request IDs, outbound fetch logging
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
// /metrics is mounted when a metrics handler is configured.
//
// # Usage Example
//
//	_, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:       logger,
//	    Resolver:     fetcher.NewFetcher(deps),
//	    MaxBatchURLs: 20,
//	})
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Request errors use the RFC 7807 format. Resolution failures are not
// request errors: each URL gets its own result with a status, error
// message and reason.
package api
