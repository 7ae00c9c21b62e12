// ABOUTME: Feed domain model represents a resolved RSS/Atom/JSON feed document
// ABOUTME: Produced by the parser; the fetcher passes it through without inspecting it

package domain

// Feed is the normalized document produced for one resolved feed URL
type Feed struct {
	// Title is the human-readable title of the feed
	Title string

	// Link is the URL the feed was actually fetched from
	Link string

	// HomepageLink is the website the feed belongs to
	HomepageLink string

	// Description provides a brief description of the feed's content
	Description string

	// Icon is an image URL representing the feed
	Icon string

	// Posts holds the feed entries in document order
	Posts []Post
}

// PostCount returns the number of posts in the feed
func (f *Feed) PostCount() int {
	if f == nil {
		return 0
	}
	return len(f.Posts)
}
