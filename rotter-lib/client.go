// ABOUTME: Main client for the Rotter library providing the ticker feed and article extraction
// ABOUTME: Offers a clean API for using core functionality without HTTP server dependencies

package rotter

import (
	"context"
	"time"

	"rotter-news-api/core/article"
	"rotter-news-api/core/errors"
	"rotter-news-api/core/feed"
	"rotter-news-api/core/interfaces"
)

// Client is the main entry point for the Rotter library
type Client struct {
	feedService    interfaces.FeedService
	articleService interfaces.ArticleService
	config         Config
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	}

	settings := config.Settings
	settings.Client = config.HTTPClient
	settings.Extract = config.Extract

	strategies, err := article.BuildStrategies(config.Strategies, settings)
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "invalid strategy list").WithCause(err)
	}
	chain := article.NewChain(strategies, article.ChainConfig{
		MinBodyLength: config.MinBodyLength,
		Logger:        deps.Logger,
		Metrics:       deps.Metrics,
	})

	return &Client{
		feedService:    feed.NewFeedService(deps, config.FeedURL),
		articleService: article.NewService(nil, chain),
		config:         config,
	}, nil
}

// RecentEntries returns feed items published within the last hours, newest first
func (c *Client) RecentEntries(ctx context.Context, hours int) ([]Entry, error) {
	if hours < 1 {
		return nil, NewError(ErrorTypeValidation, "hours must be at least 1").WithContext("hours", hours)
	}

	items, err := c.feedService.RecentItems(ctx, time.Duration(hours)*time.Hour)
	if err != nil {
		return nil, NewError(ErrorTypeNetwork, "failed to fetch the feed").WithCause(err)
	}

	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = domainItemToPublic(item)
	}
	return entries, nil
}

// ExtractArticle fetches the article behind a feed link. Failing to find text
// is not an error; the returned Article simply has an empty body.
func (c *Client) ExtractArticle(ctx context.Context, url string) (Article, error) {
	if err := article.ValidateURL(url); err != nil {
		return Article{}, invalidURL(err)
	}

	result := c.articleService.Extract(ctx, url)
	return Article{
		URL:          result.CanonicalURL,
		Body:         result.Body,
		StrategyUsed: result.StrategyUsed,
	}, nil
}

// Diagnose runs every configured strategy against url and reports each one
func (c *Client) Diagnose(ctx context.Context, url string) ([]StrategyReport, error) {
	if err := article.ValidateURL(url); err != nil {
		return nil, invalidURL(err)
	}
	return c.articleService.Diagnose(ctx, url).Strategies, nil
}

func invalidURL(err error) *Error {
	e := NewError(ErrorTypeValidation, "invalid article URL").WithCause(err)
	if errors.IsValidation(err) {
		e.WithContext("field", "url")
	}
	return e
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if config.FeedURL == "" {
		return NewError(ErrorTypeConfiguration, "feed URL is required")
	}

	return nil
}
