// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the feed and article services used by the API layer

package interfaces

import (
	"context"
	"time"

	"rotter-news-api/core/domain"
)

// FeedService supplies recent feed items
type FeedService interface {
	// RecentItems returns items published within lookback, newest first.
	RecentItems(ctx context.Context, lookback time.Duration) ([]domain.FeedItem, error)
}

// ArticleService extracts readable article text on demand
type ArticleService interface {
	// Extract canonicalizes rawURL and runs the strategy chain. It never
	// returns an error; total failure is an empty body.
	Extract(ctx context.Context, rawURL string) domain.ExtractionResult

	// Diagnose runs every strategy independently and reports each outcome.
	Diagnose(ctx context.Context, rawURL string) domain.Diagnostics
}
