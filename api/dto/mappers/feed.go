// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"rotter-news-api/api/dto/responses"
	"rotter-news-api/core/domain"
	timeutil "rotter-news-api/pkg/utils/time"
)

// ToFeedEntry converts a domain FeedItem to a ticker entry
func ToFeedEntry(item domain.FeedItem) responses.FeedEntry {
	return responses.FeedEntry{
		Title:     item.Title,
		Link:      item.Link,
		Date:      timeutil.FormatClock(item.Published),
		Timestamp: item.Published.Unix(),
		MediaURL:  item.MediaURL,
		MediaType: item.MediaType,
	}
}

// ToFeedResponse converts items, preserving their order
func ToFeedResponse(items []domain.FeedItem) responses.FeedResponse {
	entries := make([]responses.FeedEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, ToFeedEntry(item))
	}
	return responses.FeedResponse{Entries: entries}
}

// ToDiagnosticsResponse converts a diagnostics run
func ToDiagnosticsResponse(d domain.Diagnostics) responses.DiagnosticsResponse {
	reports := d.Strategies
	if reports == nil {
		reports = []domain.StrategyReport{}
	}
	return responses.DiagnosticsResponse{
		CanonicalURL: d.CanonicalURL,
		Strategies:   reports,
	}
}
