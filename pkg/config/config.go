// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines server, logging, feed polling and article extraction settings

package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"rotter-news-api/core/article"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logger configuration
	Log LogConfig

	// Feed contains RSS polling configuration
	Feed FeedConfig

	// Extraction contains the article strategy chain configuration
	Extraction ExtractionConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8000"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`

	// TrustedProxies may set the client address via X-Forwarded-For; empty keys on the peer
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// FeedConfig holds RSS polling configuration
type FeedConfig struct {
	URL          string        `env:"FEED_URL" envDefault:"https://www.rotter.net/rss/rotternews.xml"`
	DefaultHours int           `env:"FEED_DEFAULT_HOURS" envDefault:"4"`
	MaxHours     int           `env:"FEED_MAX_HOURS" envDefault:"48"`
	Timeout      time.Duration `env:"FEED_TIMEOUT" envDefault:"8s"`
	Retries      int           `env:"FEED_RETRIES" envDefault:"2"`
}

// ExtractionConfig holds article strategy chain configuration
type ExtractionConfig struct {
	// Strategies is the chain order
	Strategies []string `env:"ARTICLE_STRATEGIES" envSeparator:"," envDefault:"direct,reader,proxy"`

	// Timeouts are per-strategy outbound budgets
	Timeouts map[string]time.Duration `env:"ARTICLE_STRATEGY_TIMEOUTS" envDefault:"direct:10s,reader:20s,proxy:15s,readability:10s"`

	// RateLimits are per-strategy outbound requests per second; absent or 0 means unlimited
	RateLimits map[string]float64 `env:"ARTICLE_STRATEGY_RPS"`

	UserAgent      string `env:"ARTICLE_USER_AGENT" envDefault:"Mozilla/5.0 (Linux; Android 10) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36"`
	AcceptLanguage string `env:"ARTICLE_ACCEPT_LANGUAGE" envDefault:"he-IL,he;q=0.9,en;q=0.8"`
	Referer        string `env:"ARTICLE_REFERER" envDefault:"https://rotter.net/"`
	ReaderBaseURL  string `env:"ARTICLE_READER_BASE_URL" envDefault:"https://r.jina.ai/"`
	ProxyBaseURL   string `env:"ARTICLE_PROXY_BASE_URL" envDefault:"https://api.allorigins.win/raw?url="`

	// Markers overrides the container markers; separated by | because markers contain quotes
	Markers   []string `env:"ARTICLE_MARKERS" envSeparator:"|"`
	Encodings []string `env:"ARTICLE_ENCODINGS" envSeparator:"," envDefault:"windows-1255,iso-8859-8,utf-8"`

	PreferValidUTF8 bool  `env:"ARTICLE_PREFER_VALID_UTF8" envDefault:"true"`
	MinBodyLength   int   `env:"ARTICLE_MIN_BODY_LENGTH" envDefault:"10"`
	MaxBodyBytes    int64 `env:"ARTICLE_MAX_BODY_BYTES" envDefault:"5242880"`
}

// LoadFromEnv loads configuration from environment variables, reading a .env
// file first when one is present. Variables already set take precedence.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimitRPS < 0 || c.Server.RateLimitBurst < 0 {
		return errors.New("rate limit values cannot be negative")
	}

	u, err := url.Parse(c.Feed.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("feed URL %q is not an absolute http(s) URL", c.Feed.URL)
	}

	if c.Feed.MaxHours < 1 {
		return errors.New("feed max hours must be at least 1")
	}

	if c.Feed.DefaultHours < 1 || c.Feed.DefaultHours > c.Feed.MaxHours {
		return fmt.Errorf("feed default hours must be between 1 and %d", c.Feed.MaxHours)
	}

	if c.Feed.Retries < 0 {
		return errors.New("feed retries cannot be negative")
	}

	return c.Extraction.validate()
}

func (e *ExtractionConfig) validate() error {
	if len(e.Strategies) == 0 {
		return errors.New("at least one article strategy is required")
	}

	known := article.Names()
	seen := make(map[string]bool, len(e.Strategies))
	for i, name := range e.Strategies {
		name = strings.ToLower(strings.TrimSpace(name))
		if !slices.Contains(known, name) {
			return fmt.Errorf("unknown article strategy %q (known: %s)", name, strings.Join(known, ", "))
		}
		if seen[name] {
			return fmt.Errorf("article strategy %q listed twice", name)
		}
		seen[name] = true
		e.Strategies[i] = name
	}

	for name, d := range e.Timeouts {
		if d <= 0 {
			return fmt.Errorf("timeout for strategy %q must be positive", name)
		}
	}

	for name, rps := range e.RateLimits {
		if rps < 0 {
			return fmt.Errorf("rate limit for strategy %q cannot be negative", name)
		}
	}

	if len(e.Encodings) == 0 {
		return errors.New("at least one article encoding is required")
	}

	if e.MinBodyLength < 1 {
		return errors.New("article min body length must be at least 1")
	}

	if e.MaxBodyBytes < 1 {
		return errors.New("article max body bytes must be positive")
	}

	return nil
}
