// ABOUTME: Fetcher resolves a URL to a feed, following redirects and HTML feed links
// ABOUTME: Every resolution owns a bounded hop budget shared by redirects and rediscoveries

// Package fetcher implements feed resolution: given a URL that points at a
// feed or at a web page advertising one, it produces a parsed feed or a
// typed Outcome describing why it could not.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"feed-resolver/core/discovery"
	coreerrors "feed-resolver/core/errors"
	"feed-resolver/core/interfaces"
)

// MaxHops is how many redirects plus HTML rediscoveries one resolution may follow
const MaxHops = 3

// Fetcher resolves URLs to feeds. It holds no per-resolution state, so one
// Fetcher can serve any number of concurrent Resolve calls.
type Fetcher struct {
	deps interfaces.Dependencies
}

// NewFetcher creates a new fetcher. HTTPClient and Parser are required;
// a nil Logger falls back to a no-op logger and a nil Metrics disables metrics.
func NewFetcher(deps interfaces.Dependencies) *Fetcher {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	return &Fetcher{deps: deps}
}

// step is what a single request tells the resolution loop to do next:
// either stop with outcome, or continue with next, spending one hop.
type step struct {
	outcome *Outcome
	next    string
	kind    string
}

func done(o Outcome) step {
	return step{outcome: &o}
}

// Resolve fetches rawURL and returns exactly one Outcome. It makes at most
// 1+MaxHops calls to the HTTP client; a client that retries internally may put
// more requests on the wire. Cancelling ctx aborts the in-flight request and
// stops further hops.
func (f *Fetcher) Resolve(ctx context.Context, rawURL string) Outcome {
	start := time.Now()
	outcome := f.resolve(ctx, rawURL)

	fields := map[string]interface{}{
		"url":      rawURL,
		"final":    outcome.URL,
		"outcome":  outcome.Kind.String(),
		"hops":     outcome.Hops,
		"duration": time.Since(start).String(),
	}
	if outcome.IsSuccess() {
		fields["posts"] = outcome.Feed.PostCount()
		f.deps.Logger.Info("Feed resolved", fields)
	} else {
		fields["error"] = outcome.AsError().Error()
		f.deps.Logger.Warn("Feed resolution failed", fields)
	}

	if f.deps.Metrics != nil {
		f.deps.Metrics.RecordResolution(outcome.Kind.String(), outcome.Hops, time.Since(start))
	}
	return outcome
}

func (f *Fetcher) resolve(ctx context.Context, rawURL string) Outcome {
	if f.deps.HTTPClient == nil || f.deps.Parser == nil {
		return Failure(fmt.Errorf("fetcher is missing an HTTP client or feed parser")).at(rawURL, 0)
	}

	current := rawURL
	hopsLeft := MaxHops
	for {
		target, err := normalizeURL(current)
		if err != nil {
			return Failure(err).at(current, MaxHops-hopsLeft)
		}
		if err := ctx.Err(); err != nil {
			return Failure(&coreerrors.TransportError{URL: target, Err: err}).at(target, MaxHops-hopsLeft)
		}

		s := f.fetchOnce(ctx, target, hopsLeft)
		if s.outcome != nil {
			return s.outcome.at(target, MaxHops-hopsLeft)
		}

		if hopsLeft == 0 {
			f.deps.Logger.Debug("Hop budget exhausted", map[string]interface{}{
				"url":  target,
				"next": s.next,
				"kind": s.kind,
			})
			return TooManyRedirects().at(target, MaxHops)
		}
		hopsLeft--

		f.deps.Logger.Debug("Following "+s.kind, map[string]interface{}{
			"url":       target,
			"next":      s.next,
			"hops_left": hopsLeft,
		})
		current = s.next
	}
}

// fetchOnce performs one request and interprets its response. A redirect
// received with no hops left ends the chain before Location is looked at.
func (f *Fetcher) fetchOnce(ctx context.Context, target string, hopsLeft int) step {
	resp, err := f.deps.HTTPClient.Get(ctx, target)
	if err != nil {
		return done(Failure(&coreerrors.TransportError{URL: target, Err: err}))
	}
	body := resp.Body()
	if body != nil {
		defer body.Close()
	}

	switch code := resp.StatusCode(); code {
	case http.StatusOK:
		return f.interpret(ctx, target, body)
	case http.StatusMultipleChoices,
		http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		if hopsLeft == 0 {
			return done(TooManyRedirects())
		}
		location := resp.Header("Location")
		if location == "" {
			return done(Failure(fmt.Errorf("HTTP %d from %s: %w", code, target, coreerrors.ErrMissingRedirectLocation)))
		}
		return step{next: resolveLocation(target, location), kind: "redirect"}
	default:
		return done(HTTPStatusError(code))
	}
}

// interpret hands a 200 body to the parser and falls back to HTML discovery
// when the parser says the body is a web page.
func (f *Fetcher) interpret(ctx context.Context, target string, body io.Reader) step {
	if body == nil {
		return done(Failure(&coreerrors.ParseError{URL: target, Err: io.ErrUnexpectedEOF}))
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return done(Failure(&coreerrors.ParseError{URL: target, Err: err}))
	}
	content := string(raw)

	result, err := f.deps.Parser.Parse(ctx, content, target)
	if err != nil {
		return done(Failure(&coreerrors.ParseError{URL: target, Err: err}))
	}

	switch result.Kind {
	case interfaces.ParseKindFeed:
		if result.Feed == nil {
			return done(Failure(&coreerrors.ParseError{URL: target, Err: fmt.Errorf("parser returned no feed")}))
		}
		return done(Success(result.Feed))
	case interfaces.ParseKindHTML:
		href, ok := discovery.FindFeedLink(content)
		if !ok {
			return done(Failure(&coreerrors.DiscoveryError{URL: target, Reason: coreerrors.DiscoveryNoLink}))
		}
		next, ok := resolveCandidate(target, href)
		if !ok {
			return done(Failure(&coreerrors.DiscoveryError{URL: target, Reason: coreerrors.DiscoveryInvalidLink, Link: href}))
		}
		return step{next: next, kind: "discovered feed link"}
	default:
		return done(Failure(&coreerrors.ParseError{URL: target, Err: fmt.Errorf("unexpected parse result %s", result.Kind)}))
	}
}
