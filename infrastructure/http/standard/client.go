// ABOUTME: Standard HTTP client implementation used to fetch feed candidates
// ABOUTME: Leaves redirects to the caller and optionally retries transient failures with backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"feed-resolver/core/interfaces"
)

const (
	defaultUserAgent = "FeedResolver/1.0"
	acceptHeader     = "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.9, text/html;q=0.8, */*;q=0.5"
)

// Options configures a StandardHTTPClient
type Options struct {
	// Timeout bounds each request including reading headers
	Timeout time.Duration

	// UserAgent is sent with every request
	UserAgent string

	// MaxAttempts is how many times a request is tried when it fails at the
	// network level or returns 5xx. Values below 1 mean a single attempt.
	MaxAttempts int

	// Client overrides the underlying client, mainly for tests. Its
	// CheckRedirect is replaced so that redirects are never followed.
	Client *http.Client
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client      *http.Client
	userAgent   string
	maxAttempts int
}

// NewStandardHTTPClient creates a new HTTP client with the specified options
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	client := &http.Client{Timeout: opts.Timeout}
	if opts.Client != nil {
		copied := *opts.Client
		client = &copied
		if opts.Timeout > 0 {
			client.Timeout = opts.Timeout
		}
	}
	// 3xx responses are returned as-is; the fetcher counts them against its hop budget.
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &StandardHTTPClient{
		client:      client,
		userAgent:   userAgent,
		maxAttempts: maxAttempts,
	}
}

// Get performs an HTTP GET request. With MaxAttempts above 1, network errors
// and 5xx responses are retried with exponential backoff; the last 5xx
// response is returned as-is.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)

	attempt := 0
	resp, err := backoff.RetryWithData[*http.Response](func() (*http.Response, error) {
		attempt++
		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if resp.StatusCode >= 500 && attempt < c.maxAttempts {
			resp.Body.Close()
			return nil, fmt.Errorf("server returned %d", resp.StatusCode)
		}
		return resp, nil
	}, backoff.WithContext(c.retryPolicy(), ctx))
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// retryPolicy backs off 100ms, 200ms, 400ms... for at most maxAttempts-1 retries
func (c *StandardHTTPClient) retryPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, uint64(c.maxAttempts-1))
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
