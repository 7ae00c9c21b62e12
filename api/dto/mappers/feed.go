// ABOUTME: Mappers for converting resolution outcomes and feeds to API DTOs
// ABOUTME: Provides clean separation between the fetcher and the API layer

package mappers

import (
	"feed-resolver/api/dto/responses"
	"feed-resolver/core/domain"
	coreerrors "feed-resolver/core/errors"
	"feed-resolver/core/fetcher"
)

// ToResolveResult converts a fetcher Outcome for requestedURL into its DTO
func ToResolveResult(requestedURL string, outcome fetcher.Outcome) responses.ResolveResult {
	result := responses.ResolveResult{
		URL:      requestedURL,
		Status:   outcome.Kind.String(),
		FinalURL: outcome.URL,
		Hops:     outcome.Hops,
	}

	switch outcome.Kind {
	case fetcher.OutcomeSuccess:
		result.Feed = ToFeedResponse(outcome.Feed)
	case fetcher.OutcomeHTTPStatusError:
		result.StatusCode = outcome.StatusCode
		result.Error = outcome.AsError().Error()
	case fetcher.OutcomeTooManyRedirects:
		result.Error = outcome.AsError().Error()
	default:
		result.Error = outcome.AsError().Error()
		result.Reason = coreerrors.Reason(outcome.Err)
	}

	return result
}

// ToFeedResponse converts a domain Feed to a FeedResponse DTO
func ToFeedResponse(feed *domain.Feed) *responses.FeedResponse {
	if feed == nil {
		return nil
	}

	response := &responses.FeedResponse{
		Title:        feed.Title,
		Link:         feed.Link,
		HomepageLink: feed.HomepageLink,
		Description:  feed.Description,
		Icon:         feed.Icon,
		Posts:        make([]responses.PostResponse, 0, len(feed.Posts)),
	}

	for i := range feed.Posts {
		response.Posts = append(response.Posts, ToPostResponse(&feed.Posts[i]))
	}

	return response
}

// ToPostResponse converts a domain Post to a PostResponse DTO
func ToPostResponse(post *domain.Post) responses.PostResponse {
	resp := responses.PostResponse{
		Title:       post.Title,
		Link:        post.Link,
		Description: post.Description,
		ImageURL:    post.ImageURL,
	}
	if post.HasDate() {
		date := post.Date
		resp.Date = &date
	}
	return resp
}
