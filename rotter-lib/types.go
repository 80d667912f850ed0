// ABOUTME: Public types for the Rotter library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package rotter

import (
	"time"

	"rotter-news-api/core/domain"
)

// Entry is a single news ticker item
type Entry struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
	MediaURL  string    `json:"media_url,omitempty"`
	MediaType string    `json:"media_type,omitempty"`
}

// Article is the outcome of one extraction. Body is empty when no strategy
// produced readable text.
type Article struct {
	URL          string `json:"url"`
	Body         string `json:"body"`
	StrategyUsed string `json:"strategy_used,omitempty"`
}

// Found reports whether any text was extracted
func (a Article) Found() bool {
	return a.Body != ""
}

// StrategyReport describes how a single strategy fared during Diagnose
type StrategyReport = domain.StrategyReport

func domainItemToPublic(di domain.FeedItem) Entry {
	return Entry{
		Title:     di.Title,
		Link:      di.Link,
		Published: di.Published,
		MediaURL:  di.MediaURL,
		MediaType: di.MediaType,
	}
}
