// ABOUTME: Date parsing for feed items whose dates the feed library could not parse
// ABOUTME: Tries the layouts publishers actually emit, including ones that break RFC 822

package time

import (
	"strings"
	"time"
)

// feedDateLayouts is ordered roughly by how often each layout shows up in feeds
var feedDateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006 15:04 MST",
	"Mon, 02 Jan 06 15:04:05 -0700",
	time.RFC822Z,
	time.RFC822,
	"02 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"Monday, 02-Jan-06 15:04:05 MST",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseFeedDate parses a feed date string, returning the zero time if no layout matches
func ParseFeedDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	// "GMT+0000" style suffixes
	value = strings.Replace(value, "GMT+", "+", 1)

	for _, layout := range feedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// FirstValid returns the first non-nil, non-zero time
func FirstValid(candidates ...*time.Time) time.Time {
	for _, c := range candidates {
		if c != nil && !c.IsZero() {
			return c.UTC()
		}
	}
	return time.Time{}
}
