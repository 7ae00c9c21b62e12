// ABOUTME: Response DTOs for feed resolution endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// FeedResponse represents a resolved feed in API responses
type FeedResponse struct {
	Title        string         `json:"title" doc:"Feed title"`
	Link         string         `json:"link" doc:"URL the feed was fetched from"`
	HomepageLink string         `json:"homepageLink" doc:"Site the feed belongs to"`
	Description  string         `json:"description" doc:"Feed description"`
	Icon         string         `json:"icon,omitempty" doc:"Feed image or site favicon"`
	Posts        []PostResponse `json:"posts" doc:"Feed entries"`
}

// PostResponse represents a feed entry in API responses
type PostResponse struct {
	Title       string     `json:"title" doc:"Entry title"`
	Link        string     `json:"link" doc:"Link to the full article"`
	Description string     `json:"description,omitempty" doc:"Entry summary as plain text"`
	ImageURL    string     `json:"imageUrl,omitempty" doc:"Entry image"`
	Date        *time.Time `json:"date,omitempty" doc:"Publication date, omitted when unknown"`
}

// ResolveResult is the outcome of resolving one requested URL
type ResolveResult struct {
	URL        string        `json:"url" doc:"URL as requested"`
	Status     string        `json:"status" doc:"success, http_status_error, too_many_redirects or error"`
	FinalURL   string        `json:"finalUrl,omitempty" doc:"Last URL requested"`
	Hops       int           `json:"hops" doc:"Redirects and discovered links followed"`
	StatusCode int           `json:"statusCode,omitempty" doc:"Terminal HTTP status for http_status_error"`
	Error      string        `json:"error,omitempty" doc:"Error message when resolution failed"`
	Reason     string        `json:"reason,omitempty" doc:"Machine readable failure cause"`
	Feed       *FeedResponse `json:"feed,omitempty" doc:"Resolved feed on success"`
}
