// ABOUTME: Feed domain model holds one poll of the news ticker RSS feed
// ABOUTME: Selects the items inside a lookback window, newest first

package domain

import (
	"sort"
	"time"
)

// Feed is the parsed RSS feed at the time it was fetched
type Feed struct {
	Title string

	// URL is the RSS URL that was fetched
	URL string

	// Link is the site URL the feed advertises
	Link string

	// Items holds only entries that passed FeedItem.IsValid
	Items []FeedItem

	FetchedAt time.Time
}

// Recent returns the items published within lookback of now, newest first.
// Items with equal timestamps keep their feed order.
func (f *Feed) Recent(now time.Time, lookback time.Duration) []FeedItem {
	items := make([]FeedItem, 0, len(f.Items))
	for _, item := range f.Items {
		if item.PublishedWithin(now, lookback) {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})
	return items
}
