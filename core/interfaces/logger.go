package interfaces

// Logger defines the interface for logging throughout the application.
// The production implementation is backed by logrus; tests substitute
// recording or no-op loggers.
//
// Example usage:
//
//	logger.Debug("Following redirect", map[string]interface{}{
//		"url":       "https://example.com/feed",
//		"location":  "https://example.com/feed.xml",
//		"hops_left": 2,
//	})
//
//	logger.Warn("Feed resolution failed", map[string]interface{}{
//		"url":   "https://example.com",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs per-hop detail such as redirects and rediscovered links.
	Debug(msg string, fields map[string]interface{})

	// Info logs successful resolutions and lifecycle events.
	Info(msg string, fields map[string]interface{})

	// Warn logs resolutions that ended in a failure outcome.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures of the service itself.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything. It is used when no logger is configured.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields map[string]interface{}) {}
func (NopLogger) Info(msg string, fields map[string]interface{})  {}
func (NopLogger) Warn(msg string, fields map[string]interface{})  {}
func (NopLogger) Error(msg string, fields map[string]interface{}) {}
