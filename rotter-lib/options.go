// ABOUTME: Configuration options for the Rotter library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package rotter

import (
	"time"

	"rotter-news-api/core/article"
	"rotter-news-api/core/extract"
	"rotter-news-api/core/interfaces"
	"rotter-news-api/infrastructure/http/standard"
	"rotter-news-api/infrastructure/logger/structured"
)

// DefaultFeedURL is the news ticker RSS feed
const DefaultFeedURL = "https://www.rotter.net/rss/rotternews.xml"

// Config holds the configuration for the client
type Config struct {
	// HTTPClient is shared by the feed and every article strategy
	HTTPClient interfaces.HTTPClient

	Logger interfaces.Logger

	// Metrics receives strategy and extraction outcomes; nil records nothing
	Metrics interfaces.Metrics

	FeedURL string

	// Strategies is the chain order; see article.DefaultOrder
	Strategies []string

	// Settings overrides strategy headers, endpoints, timeouts and rate limits.
	// Client and Extract are filled from this Config.
	Settings article.Settings

	Extract extract.Config

	MinBodyLength int
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics records strategy and extraction outcomes
func WithMetrics(m interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = m
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = structured.Nop{}
		return nil
	}
}

// WithFeedURL points the client at a different RSS feed
func WithFeedURL(url string) Option {
	return func(c *Config) error {
		if url == "" {
			return NewError(ErrorTypeConfiguration, "feed URL cannot be empty")
		}
		c.FeedURL = url
		return nil
	}
}

// WithStrategies sets the strategy chain order
func WithStrategies(names ...string) Option {
	return func(c *Config) error {
		if len(names) == 0 {
			return NewError(ErrorTypeConfiguration, "at least one strategy is required")
		}
		c.Strategies = append([]string(nil), names...)
		return nil
	}
}

// WithStrategyTimeout overrides the budget of one strategy
func WithStrategyTimeout(name string, timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "strategy timeout must be positive").
				WithContext("strategy", name)
		}
		if c.Settings.Timeouts == nil {
			c.Settings.Timeouts = make(map[string]time.Duration)
		}
		c.Settings.Timeouts[name] = timeout
		return nil
	}
}

// WithMarkers replaces the container markers, most specific first
func WithMarkers(markers ...string) Option {
	return func(c *Config) error {
		c.Extract.Markers = append([]string(nil), markers...)
		return nil
	}
}

// WithSettings replaces the strategy settings wholesale
func WithSettings(s article.Settings) Option {
	return func(c *Config) error {
		c.Settings = s
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient:    standard.NewStandardHTTPClient(30*time.Second, standard.WithRetries(1)),
		Logger:        structured.New(structured.Options{Level: "warn"}),
		FeedURL:       DefaultFeedURL,
		Strategies:    append([]string(nil), article.DefaultOrder...),
		Extract:       extract.DefaultConfig(),
		MinBodyLength: 10,
	}
}
