// ABOUTME: HTML link scanner finds the feed advertised by a web page
// ABOUTME: Streams tags with the x/net/html tokenizer instead of building a DOM

// Package discovery locates RSS and Atom feeds referenced from HTML pages.
package discovery

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

const (
	// RSSMediaType is the link type advertised for RSS feeds
	RSSMediaType = "application/rss+xml"

	// AtomMediaType is the link type advertised for Atom feeds
	AtomMediaType = "application/atom+xml"
)

// FindFeedLink returns the href of the first <link> tag whose type is the RSS
// or Atom media type. The type attribute is compared case-insensitively after
// trimming surrounding whitespace, so " Application/RSS+XML " matches. The href
// is returned as written in the page and may be relative. ok is false when the
// page advertises no feed.
func FindFeedLink(page string) (href string, ok bool) {
	return FindFeedLinkReader(strings.NewReader(page))
}

// FindFeedLinkReader is FindFeedLink over a stream. Read errors end the scan
// and whatever was found before them is returned.
func FindFeedLinkReader(r io.Reader) (href string, ok bool) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a read error, either way the input is over.
			return href, href != ""
		case html.StartTagToken, html.SelfClosingTagToken:
			if href != "" {
				continue
			}
			name, hasAttr := z.TagName()
			if !hasAttr || string(name) != "link" {
				continue
			}
			href = feedHref(z)
		}
	}
}

// feedHref reads the attributes of the current <link> tag and returns its
// trimmed href when the tag advertises a feed.
func feedHref(z *html.Tokenizer) string {
	var linkType, href string
	for {
		key, val, more := z.TagAttr()
		switch string(key) {
		case "type":
			linkType = strings.TrimSpace(string(val))
		case "href":
			href = strings.TrimSpace(string(val))
		}
		if !more {
			break
		}
	}
	if !IsFeedMediaType(linkType) {
		return ""
	}
	return href
}

// IsFeedMediaType reports whether a <link> type attribute names a feed
func IsFeedMediaType(mediaType string) bool {
	mediaType = strings.TrimSpace(mediaType)
	return strings.EqualFold(mediaType, RSSMediaType) || strings.EqualFold(mediaType, AtomMediaType)
}
