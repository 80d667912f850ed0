// ABOUTME: Feed service fetches the news RSS feed and selects recent items
// ABOUTME: Parses with gofeed, normalizes titles and dates, and sorts newest first

package feed

import (
	"bytes"
	"context"
	"errors"
	"html"
	"io"
	"net/url"
	"strings"
	"time"

	"rotter-news-api/core/domain"
	coreerrors "rotter-news-api/core/errors"
	"rotter-news-api/core/interfaces"
	timeutil "rotter-news-api/pkg/utils/time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const feedAPI = "rotter-rss"

// FeedService handles feed fetching and filtering
type FeedService struct {
	deps    interfaces.Dependencies
	feedURL string
	now     func() time.Time
}

// NewFeedService creates a new feed service instance for a single feed URL
func NewFeedService(deps interfaces.Dependencies, feedURL string) *FeedService {
	return &FeedService{
		deps:    deps,
		feedURL: feedURL,
		now:     time.Now,
	}
}

// SetClock replaces the time source used for lookback filtering
func (s *FeedService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// RecentItems implements interfaces.FeedService
func (s *FeedService) RecentItems(ctx context.Context, lookback time.Duration) ([]domain.FeedItem, error) {
	feed, err := s.ParseSingleFeed(ctx, s.feedURL)
	if err != nil {
		return nil, err
	}

	items := feed.Recent(s.now(), lookback)

	s.logDebug("Selected recent feed items", map[string]interface{}{
		"total":    len(feed.Items),
		"selected": len(items),
		"lookback": lookback.String(),
	})

	return items, nil
}

// ParseSingleFeed fetches and parses the feed at feedURL
func (s *FeedService) ParseSingleFeed(ctx context.Context, feedURL string) (*domain.Feed, error) {
	if feedURL == "" {
		return nil, errors.New("feed URL cannot be empty")
	}

	parsedURL, err := url.Parse(feedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("invalid URL format")
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL, nil)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{Message: err.Error(), API: feedAPI}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        feedAPI,
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "reading feed")
	}

	feed, err := s.parseFeedContent(bodyBytes, feedURL)
	if err != nil {
		return nil, err
	}
	feed.FetchedAt = s.now()

	return feed, nil
}

// parseFeedContent parses feed content from bytes. gofeed honours the
// declared XML encoding.
func (s *FeedService) parseFeedContent(content []byte, feedURL string) (*domain.Feed, error) {
	if len(content) == 0 {
		return nil, &coreerrors.ExternalAPIError{StatusCode: 200, Message: "empty feed content", API: feedAPI}
	}

	parser := gofeed.NewParser()
	parsedFeed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{StatusCode: 200, Message: "unparsable feed: " + err.Error(), API: feedAPI}
	}

	feed := &domain.Feed{
		Title: parsedFeed.Title,
		URL:   feedURL,
		Link:  parsedFeed.Link,
		Items: make([]domain.FeedItem, 0, len(parsedFeed.Items)),
	}

	dropped := 0
	for _, item := range parsedFeed.Items {
		converted := convertItemToDomain(item)
		if !converted.IsValid() {
			dropped++
			continue
		}
		feed.Items = append(feed.Items, converted)
	}

	if dropped > 0 {
		s.logDebug("Dropped feed items without title or date", map[string]interface{}{
			"url":     feedURL,
			"dropped": dropped,
		})
	}

	return feed, nil
}

// convertItemToDomain converts a gofeed item to a domain item
func convertItemToDomain(item *gofeed.Item) domain.FeedItem {
	feedItem := domain.FeedItem{
		Title:           strings.TrimSpace(html.UnescapeString(item.Title)),
		Link:            strings.TrimSpace(item.Link),
		DescriptionHTML: item.Description,
		Published:       timeutil.ParseFlexibleTime(item.Published),
	}

	if feedItem.Published.IsZero() && item.PublishedParsed != nil {
		feedItem.Published = *item.PublishedParsed
	}

	feedItem.MediaURL, feedItem.MediaType = findMedia(item)
	return feedItem
}

// findMedia returns the first enclosure, the item image, or the first image
// in the description, in that order
func findMedia(item *gofeed.Item) (string, string) {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL, enc.Type
		}
	}

	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL, ""
	}

	if !strings.Contains(item.Description, "<img") {
		return "", ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(item.Description))
	if err != nil {
		return "", ""
	}
	if src, ok := doc.Find("img[src]").First().Attr("src"); ok {
		return strings.TrimSpace(src), ""
	}
	return "", ""
}

func (s *FeedService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
