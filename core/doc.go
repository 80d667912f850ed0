// Package core contains the business logic for the Rotter news API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: pure domain models (FeedItem, Feed, ExtractionResult, StrategyReport)
// - extract: link canonicalization, encoding recovery, tag stripping and the
// container and markdown extractors
// - article: fetch strategies, the ordered strategy chain and the article service
// - feed: RSS fetching, filtering and sorting
// - errors: custom error types for better error handling
// - interfaces: contracts for external dependencies (HTTP, logger) and services
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Nothing is cached; every request re-fetches and re-extracts
//
// # Usage Example
//
//	strategies, err := article.BuildStrategies(article.DefaultOrder, article.Settings{
//	    Client:  myHTTPClient, // implements interfaces.HTTPClient
//	    Extract: extract.DefaultConfig(),
//	})
//	if err != nil {
//	    return err
//	}
//
//	chain := article.NewChain(strategies, article.ChainConfig{Logger: myLogger})
//	svc := article.NewService(nil, chain)
//
//	result := svc.Extract(ctx, "https://rotter.net/cgi-bin/forum/dcboard.cgi?az=read_count&om=922421&forum=scoops1")
//	if result.AllStrategiesFailed {
//	    // nothing readable; result.Body is ""
//	}
package core
