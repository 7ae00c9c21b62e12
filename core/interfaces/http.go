package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the transport used to fetch feed candidates.
// Implementations must not follow redirects on their own: the fetcher
// needs to see every 3xx response to enforce its hop budget.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Returns an error for connectivity, TLS, timeout or request-building failures.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
