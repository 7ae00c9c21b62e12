package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"feed-resolver/core/domain"
	"feed-resolver/core/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct{}

func (stubResolver) Resolve(ctx context.Context, rawURL string) fetcher.Outcome {
	return fetcher.Success(&domain.Feed{Title: "Stub", Link: rawURL})
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func TestNewAPI_HasCorrectInfo(t *testing.T) {
	api, router := NewAPI()
	require.NotNil(t, api)
	require.NotNil(t, router)

	info := api.OpenAPI().Info
	assert.Equal(t, "Feed Resolver API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", w.Header().Get("Content-Type"))
}

func TestAPI_Health(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPI_ResolveRouteOnlyWithResolver(t *testing.T) {
	api, _ := NewAPI()
	assert.Nil(t, api.OpenAPI().Paths["/resolve"])

	api, _ = NewAPIWithMiddleware(APIConfig{Resolver: stubResolver{}})
	require.NotNil(t, api.OpenAPI().Paths["/resolve"])
	assert.NotNil(t, api.OpenAPI().Paths["/resolve"].Post)
	assert.NotNil(t, api.OpenAPI().Paths["/resolve"].Get)
}

func TestAPI_ResolveEndToEnd(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{
		Logger:       nopLogger{},
		Resolver:     stubResolver{},
		MaxBatchURLs: 5,
	})

	body := strings.NewReader(`{"urls":["https://a.example/feed","https://b.example/feed"]}`)
	req := httptest.NewRequest(http.MethodPost, "/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var out struct {
		Results []struct {
			URL    string `json:"url"`
			Status string `json:"status"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Results, 2)
	assert.Equal(t, "https://a.example/feed", out.Results[0].URL)
	assert.Equal(t, "success", out.Results[1].Status)
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("metric_total 1\n"))
	})
	_, router := NewAPIWithMiddleware(APIConfig{MetricsHandler: metrics})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "metric_total 1\n", w.Body.String())
}

func TestAPI_MetricsDisabled(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{Resolver: stubResolver{}})

	req := httptest.NewRequest(http.MethodOptions, "/resolve", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
