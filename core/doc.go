// Package core contains the feed resolution logic.
// It is framework-agnostic: transport, parsing, logging and metrics are
// injected through the interfaces package.
//
// The core package is organized into several sub-packages:
//
// - domain: Feed and Post models
// - fetcher: Resolves a URL to a feed, following redirects and HTML feed links within a hop budget
// - discovery: Scans HTML for the first RSS/Atom <link> element
// - errors: Typed failure causes and helpers to classify them
// - interfaces: Contracts for external dependencies (HTTP, parser, logger, metrics)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // must not follow redirects itself
//	    Parser:     myParser,     // implements interfaces.FeedParser
//	    Logger:     myLogger,     // optional
//	}
//
//	outcome := fetcher.NewFetcher(deps).Resolve(ctx, "example.com/blog")
//	switch outcome.Kind {
//	case fetcher.OutcomeSuccess:
//	    fmt.Println(outcome.Feed.Title)
//	case fetcher.OutcomeHTTPStatusError:
//	    fmt.Println("status", outcome.StatusCode)
//	default:
//	    fmt.Println(outcome.AsError())
//	}
package core
