package fetcher

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"feed-resolver/core/domain"
	"feed-resolver/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)

	mu       sync.Mutex
	requests []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, url)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no response configured")
}

func (m *mockHTTPClient) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requests...)
}

// routes returns a client answering each URL from a fixed table
func routes(table map[string]*mockResponse) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			resp, ok := table[url]
			if !ok {
				return &mockResponse{statusCode: 404}, nil
			}
			return resp, nil
		},
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func redirect(code int, location string) *mockResponse {
	return &mockResponse{statusCode: code, headers: map[string]string{"Location": location}}
}

func okResponse(body string) *mockResponse {
	return &mockResponse{statusCode: 200, body: body}
}

// fakeParser understands a tiny test format: "FEED:<title>" is a feed,
// anything starting with "<html" is a web page, everything else is a parse error.
type fakeParser struct {
	mu      sync.Mutex
	sources []string
}

func (p *fakeParser) Parse(ctx context.Context, content string, sourceURL string) (interfaces.ParseResult, error) {
	p.mu.Lock()
	p.sources = append(p.sources, sourceURL)
	p.mu.Unlock()

	switch {
	case strings.HasPrefix(content, "FEED:"):
		return interfaces.ParseResult{
			Kind: interfaces.ParseKindFeed,
			Feed: &domain.Feed{
				Title: strings.TrimPrefix(content, "FEED:"),
				Link:  sourceURL,
				Posts: []domain.Post{{Title: "first", Link: sourceURL + "#1"}},
			},
		}, nil
	case strings.HasPrefix(content, "<html"):
		return interfaces.ParseResult{Kind: interfaces.ParseKindHTML}, nil
	default:
		return interfaces.ParseResult{}, errors.New("unrecognized content")
	}
}

// mockLogger records log entries for assertions
type mockLogger struct {
	mu   sync.Mutex
	logs []logEntry
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, logEntry{Level: level, Message: msg, Fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

// mockMetrics records resolution observations
type mockMetrics struct {
	mu       sync.Mutex
	outcomes []string
	hops     []int
}

func (m *mockMetrics) RecordResolution(outcome string, hops int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
	m.hops = append(m.hops, hops)
}

func newTestFetcher(client interfaces.HTTPClient) *Fetcher {
	return NewFetcher(interfaces.Dependencies{
		HTTPClient: client,
		Parser:     &fakeParser{},
	})
}
