// ABOUTME: Post domain model represents an individual entry within a feed
// ABOUTME: Dates are optional; a zero Date means the feed gave none we could parse

package domain

import "time"

// Post represents an individual item/entry in a feed
type Post struct {
	// Title is the post's headline
	Title string

	// Link is the URL to the full article
	Link string

	// Description is a plain-text summary of the post
	Description string

	// ImageURL is an optional image associated with the post
	ImageURL string

	// Date is when the post was published; zero when unknown
	Date time.Time
}

// HasDate reports whether a publication date was recovered for the post
func (p *Post) HasDate() bool {
	return !p.Date.IsZero()
}
