// ABOUTME: URL helpers for the fetcher: input normalization and Location resolution
// ABOUTME: Relative references are resolved against the URL that produced them

package fetcher

import (
	"errors"
	"net/url"
	"strings"

	coreerrors "feed-resolver/core/errors"
)

var errMissingHost = errors.New("missing host")

// normalizeURL forces the https scheme while keeping host, path and query.
// A raw URL with no scheme such as "example.com/feed" is read as host plus path.
func normalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.Contains(trimmed, "://") && !strings.HasPrefix(trimmed, "//") {
		trimmed = "//" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", &coreerrors.InvalidURLError{URL: raw, Err: err}
	}
	if u.Host == "" {
		return "", &coreerrors.InvalidURLError{URL: raw, Err: errMissingHost}
	}

	u.Scheme = "https"
	return u.String(), nil
}

// resolveLocation turns a redirect Location into the next URL to fetch.
// Relative references are resolved against the URL that was just requested.
// A Location that does not parse is returned untouched so the next
// normalization reports it.
func resolveLocation(current, location string) string {
	ref, err := url.Parse(strings.TrimSpace(location))
	if err != nil || ref.IsAbs() {
		return location
	}
	base, err := url.Parse(current)
	if err != nil {
		return location
	}
	return base.ResolveReference(ref).String()
}

// resolveCandidate combines a discovered href with https://<host of pageURL>.
// ok is false when the result is not an absolute http(s) URL with a host.
func resolveCandidate(pageURL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}

	page, err := url.Parse(pageURL)
	if err != nil || page.Host == "" {
		return "", false
	}
	root := &url.URL{Scheme: "https", Host: page.Host, Path: "/"}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	resolved := root.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	if resolved.Host == "" {
		return "", false
	}
	return resolved.String(), true
}
