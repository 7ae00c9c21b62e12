// ABOUTME: Feed parser contract consumed by the fetcher
// ABOUTME: Distinguishes real feeds from HTML pages through a result kind instead of an error

package interfaces

import (
	"context"

	"feed-resolver/core/domain"
)

// ParseKind tells the fetcher what kind of document the parser was given
type ParseKind int

const (
	// ParseKindFeed means the content was a feed and Feed is populated
	ParseKindFeed ParseKind = iota

	// ParseKindHTML means the content is an HTML page, not a feed
	ParseKindHTML
)

// String returns a readable name for the kind
func (k ParseKind) String() string {
	switch k {
	case ParseKindFeed:
		return "feed"
	case ParseKindHTML:
		return "html"
	default:
		return "unknown"
	}
}

// ParseResult is the tagged result of a parse attempt
type ParseResult struct {
	Kind ParseKind
	Feed *domain.Feed
}

// FeedParser turns fetched content into a feed document.
//
// Parse returns ParseKindHTML (with a nil Feed and nil error) when the content
// is recognizably an HTML page. Any other content it cannot turn into a feed
// is reported as an error.
type FeedParser interface {
	Parse(ctx context.Context, content string, sourceURL string) (ParseResult, error)
}
