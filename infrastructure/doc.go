// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client that never follows redirects, with optional retries
// - parser/feedparser: gofeed-based parser that tells feeds from HTML pages
// - logger/structured: logrus-backed structured logger
// - metrics: Prometheus recorder for resolution outcomes
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(standard.Options{
//	    Timeout:     30 * time.Second,
//	    MaxAttempts: 2,
//	})
//	resp, err := client.Get(ctx, "https://example.com/feed.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := structured.New(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Resolving", map[string]interface{}{
//	    "url": "https://example.com",
//	})
package infrastructure
