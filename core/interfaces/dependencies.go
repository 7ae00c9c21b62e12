// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the feed resolver

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Parser turns fetched content into feed documents
	Parser FeedParser

	// Logger provides structured logging
	Logger Logger

	// Metrics is optional; nil disables metric reporting
	Metrics Metrics
}
