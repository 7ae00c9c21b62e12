// ABOUTME: Command line entry point that resolves URLs to feeds and prints JSON
// ABOUTME: Shares the fetcher, parser and transport with the API server

package main

import (
	"log"
	"os"

	"feed-resolver/pkg/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	if err := newApp(os.Stdout, newFetcher).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
