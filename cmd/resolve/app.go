// ABOUTME: Builds the urfave/cli application behind the resolve command
// ABOUTME: Resolves each argument concurrently and writes the outcomes as JSON

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/urfave/cli/v2"

	"feed-resolver/api/dto/mappers"
	"feed-resolver/api/dto/responses"
	"feed-resolver/core/fetcher"
	"feed-resolver/core/interfaces"
	stdhttp "feed-resolver/infrastructure/http/standard"
	"feed-resolver/infrastructure/logger/structured"
	"feed-resolver/infrastructure/parser/feedparser"
)

type resolver interface {
	Resolve(ctx context.Context, rawURL string) fetcher.Outcome
}

// resolverFactory builds the resolver once flags are parsed
type resolverFactory func(c *cli.Context) (resolver, error)

func newApp(out io.Writer, newResolver resolverFactory) *cli.App {
	return &cli.App{
		Name:      "resolve",
		Usage:     "Resolve feed or web page URLs to parsed feeds",
		ArgsUsage: "<url> [url...]",
		Description: `Fetches each URL over https, following up to three redirects or
		HTML <link> feed advertisements, and prints one JSON result per URL.

		Exits non-zero when any URL fails to resolve.

		Flags can be set via environment variables, e.g.:

		--timeout => HTTP_TIMEOUT=10s
		--log-level => LOG_LEVEL=debug
		`,
		Writer: out,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Value:   30 * time.Second,
				Usage:   "Timeout for each HTTP request",
				EnvVars: []string{"HTTP_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "user-agent",
				Value:   "FeedResolver/1.0",
				Usage:   "User-Agent sent with each request",
				EnvVars: []string{"HTTP_USER_AGENT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error); logs go to stderr",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "Print one JSON object per line instead of indented output",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one URL is required", 2)
			}

			r, err := newResolver(c)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			results := resolveAll(c.Context, r, c.Args().Slice())

			enc := json.NewEncoder(c.App.Writer)
			if !c.Bool("compact") {
				enc.SetIndent("", "  ")
			}
			failed := 0
			for _, result := range results {
				if err := enc.Encode(result); err != nil {
					return err
				}
				if result.Status != fetcher.OutcomeSuccess.String() {
					failed++
				}
			}

			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d URLs failed to resolve", failed, len(results)), 1)
			}
			return nil
		},
	}
}

func resolveAll(ctx context.Context, r resolver, urls []string) []responses.ResolveResult {
	results := make([]responses.ResolveResult, len(urls))

	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(idx int, target string) {
			defer wg.Done()
			results[idx] = mappers.ToResolveResult(target, r.Resolve(ctx, target))
		}(i, u)
	}
	wg.Wait()

	return results
}

// newFetcher wires the real HTTP client and parser from flags
func newFetcher(c *cli.Context) (resolver, error) {
	logger, err := structured.New(structured.Options{
		Level:  c.String("log-level"),
		Output: os.Stderr,
	})
	if err != nil {
		return nil, err
	}

	return fetcher.NewFetcher(interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(stdhttp.Options{
			Timeout:   c.Duration("timeout"),
			UserAgent: c.String("user-agent"),
		}),
		Parser: feedparser.NewParser(),
		Logger: logger,
	}), nil
}
