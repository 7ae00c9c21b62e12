package fetcher_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "feed-resolver/core/errors"
	"feed-resolver/core/fetcher"
	"feed-resolver/core/interfaces"
	stdhttp "feed-resolver/infrastructure/http/standard"
	"feed-resolver/infrastructure/parser/feedparser"
)

const siteFeed = `<?xml version="1.0"?>
<rss version="2.0"><channel>
<title>Site</title><link>https://site.example/</link>
<item><title>Hello</title><link>https://site.example/hello</link></item>
</channel></rss>`

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, siteFeed)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!DOCTYPE html><html><head>
<link rel="alternate" type="application/rss+xml" href="/feed.xml">
</head><body>Welcome</body></html>`)
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	mux.HandleFunc("/bare", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>No feeds here</title></head></html>`)
	})

	srv := httptest.NewTLSServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newRealFetcher(srv *httptest.Server) *fetcher.Fetcher {
	return fetcher.NewFetcher(interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(stdhttp.Options{Client: srv.Client()}),
		Parser:     feedparser.NewParser(),
	})
}

func TestIntegration_RedirectThenDiscovery(t *testing.T) {
	srv := newSite(t)
	f := newRealFetcher(srv)

	// http:// is upgraded to the TLS server
	start := strings.Replace(srv.URL, "https://", "http://", 1) + "/old"
	outcome := f.Resolve(context.Background(), start)

	require.True(t, outcome.IsSuccess(), "outcome: %s", outcome)
	assert.Equal(t, 2, outcome.Hops)
	assert.Equal(t, srv.URL+"/feed.xml", outcome.URL)
	assert.Equal(t, "Site", outcome.Feed.Title)
	require.Len(t, outcome.Feed.Posts, 1)
	assert.Equal(t, "https://site.example/hello", outcome.Feed.Posts[0].Link)
}

func TestIntegration_RedirectLoop(t *testing.T) {
	srv := newSite(t)

	outcome := newRealFetcher(srv).Resolve(context.Background(), srv.URL+"/loop")

	assert.Equal(t, fetcher.OutcomeTooManyRedirects, outcome.Kind)
	assert.Equal(t, fetcher.MaxHops, outcome.Hops)
}

func TestIntegration_PageWithoutFeedLink(t *testing.T) {
	srv := newSite(t)

	outcome := newRealFetcher(srv).Resolve(context.Background(), srv.URL+"/bare")

	assert.Equal(t, fetcher.OutcomeError, outcome.Kind)
	assert.ErrorIs(t, outcome.Err, coreerrors.ErrUnsupportedDiscovery)
	assert.Equal(t, "discovery_no_link", coreerrors.Reason(outcome.Err))
}

func TestIntegration_NotFound(t *testing.T) {
	srv := newSite(t)

	outcome := newRealFetcher(srv).Resolve(context.Background(), srv.URL+"/missing")

	assert.Equal(t, fetcher.OutcomeHTTPStatusError, outcome.Kind)
	assert.Equal(t, http.StatusNotFound, outcome.StatusCode)
}
