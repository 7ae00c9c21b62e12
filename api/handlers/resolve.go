// ABOUTME: Resolve handler turning page or feed URLs into parsed feeds
// ABOUTME: Batches are resolved concurrently, one independent resolution per URL

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"feed-resolver/api/dto/mappers"
	"feed-resolver/api/dto/requests"
	"feed-resolver/api/dto/responses"
	"feed-resolver/core/errors"
	"feed-resolver/core/fetcher"
	"feed-resolver/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// Resolver is the part of the fetcher the handler depends on
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) fetcher.Outcome
}

// ResolveHandler handles feed resolution
type ResolveHandler struct {
	resolver Resolver
	maxURLs  int
	logger   interfaces.Logger
}

// NewResolveHandler creates a new resolve handler. maxURLs caps the batch
// size of POST /resolve; values below 1 mean no cap.
func NewResolveHandler(resolver Resolver, maxURLs int, logger interfaces.Logger) *ResolveHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &ResolveHandler{
		resolver: resolver,
		maxURLs:  maxURLs,
		logger:   logger,
	}
}

// RegisterRoutes registers resolve routes
func (h *ResolveHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolveFeeds",
		Method:      http.MethodPost,
		Path:        "/resolve",
		Summary:     "Resolve feeds",
		Description: "Fetches each URL, following redirects and HTML feed links, and returns the parsed feed or the reason it could not be resolved",
		Tags:        []string{"Resolve"},
	}, h.ResolveFeeds)

	huma.Register(api, huma.Operation{
		OperationID: "resolveFeed",
		Method:      http.MethodGet,
		Path:        "/resolve",
		Summary:     "Resolve a single feed",
		Tags:        []string{"Resolve"},
	}, h.ResolveFeed)
}

// ResolveFeedsInput defines the input for batch resolution
type ResolveFeedsInput struct {
	Body requests.ResolveRequest
}

// ResolveFeedsOutput defines the output for batch resolution
type ResolveFeedsOutput struct {
	Body struct {
		Results []responses.ResolveResult `json:"results" doc:"One result per requested URL, in request order"`
	}
}

// ResolveFeedInput defines the input for single resolution
type ResolveFeedInput struct {
	URL string `query:"url" required:"true" doc:"Feed or web page URL to resolve"`
}

// ResolveFeedOutput defines the output for single resolution
type ResolveFeedOutput struct {
	Body responses.ResolveResult
}

// ResolveFeeds handles the POST /resolve endpoint
func (h *ResolveHandler) ResolveFeeds(ctx context.Context, input *ResolveFeedsInput) (*ResolveFeedsOutput, error) {
	urls := input.Body.CleanURLs()
	if len(urls) == 0 {
		return nil, toHumaError(&errors.ValidationError{Field: "urls", Message: "at least one non-blank URL is required"})
	}
	if h.maxURLs > 0 && len(urls) > h.maxURLs {
		return nil, toHumaError(&errors.ValidationError{
			Field:   "urls",
			Message: fmt.Sprintf("at most %d URLs per request, got %d", h.maxURLs, len(urls)),
		})
	}

	var wg sync.WaitGroup
	results := make([]responses.ResolveResult, len(urls))

	for i, rawURL := range urls {
		wg.Add(1)
		go func(idx int, target string) {
			defer wg.Done()
			results[idx] = mappers.ToResolveResult(target, h.resolver.Resolve(ctx, target))
		}(i, rawURL)
	}
	wg.Wait()

	succeeded := 0
	for _, r := range results {
		if r.Status == fetcher.OutcomeSuccess.String() {
			succeeded++
		}
	}
	h.logger.Info("Resolved feed batch", map[string]interface{}{
		"requested": len(urls),
		"succeeded": succeeded,
	})

	output := &ResolveFeedsOutput{}
	output.Body.Results = results
	return output, nil
}

// ResolveFeed handles the GET /resolve endpoint
func (h *ResolveHandler) ResolveFeed(ctx context.Context, input *ResolveFeedInput) (*ResolveFeedOutput, error) {
	target := strings.TrimSpace(input.URL)
	if target == "" {
		return nil, toHumaError(&errors.ValidationError{Field: "url", Message: "is required"})
	}

	return &ResolveFeedOutput{
		Body: mappers.ToResolveResult(target, h.resolver.Resolve(ctx, target)),
	}, nil
}
