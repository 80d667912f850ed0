// ABOUTME: FeedItem domain model represents an individual entry within the news feed
// ABOUTME: Provides validation to ensure item has the fields the ticker needs

package domain

import "time"

// FeedItem represents an individual item in the news feed
type FeedItem struct {
	// Title is the item's headline, HTML-unescaped
	Title string

	// Published is when the item was published, in the feed's own zone
	Published time.Time

	// Link is the raw article URL; it may point at a redirect gateway
	Link string

	// DescriptionHTML is the raw item description, often empty
	DescriptionHTML string

	// Media fields
	MediaURL  string // First enclosure or description image
	MediaType string // MIME type when known
}

// IsValid checks if the feed item has all required fields
func (fi *FeedItem) IsValid() bool {
	if fi.Title == "" {
		return false
	}

	if fi.Published.IsZero() {
		return false
	}

	return true
}

// PublishedWithin reports whether the item was published after now-lookback.
func (fi *FeedItem) PublishedWithin(now time.Time, lookback time.Duration) bool {
	return fi.Published.After(now.Add(-lookback))
}
