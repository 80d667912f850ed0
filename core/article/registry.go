// ABOUTME: Strategy registry that builds the chain from configured names
// ABOUTME: Reordering or removing strategies is a configuration change, not a code change

package article

import (
	"net/url"
	"sort"
	"strings"
	"time"

	coreerrors "rotter-news-api/core/errors"
	"rotter-news-api/core/extract"
	"rotter-news-api/core/interfaces"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// Strategy names
const (
	Direct      = "direct"
	Reader      = "reader"
	Proxy       = "proxy"
	Readability = "readability"
)

// DefaultOrder is the chain used when no order is configured.
var DefaultOrder = []string{Direct, Reader, Proxy}

var defaultTimeouts = map[string]time.Duration{
	Direct:      10 * time.Second,
	Reader:      20 * time.Second,
	Proxy:       15 * time.Second,
	Readability: 10 * time.Second,
}

// Settings carries everything strategies need. It is read once at build time.
type Settings struct {
	Client  interfaces.HTTPClient
	Extract extract.Config

	// Timeouts and RateLimits are keyed by strategy name.
	Timeouts   map[string]time.Duration
	RateLimits map[string]float64

	UserAgent      string
	AcceptLanguage string
	Referer        string

	// ReaderBaseURL is prefixed to the target URL verbatim.
	ReaderBaseURL string

	// ProxyBaseURL is followed by the percent-encoded target URL.
	ProxyBaseURL string
}

type builder func(name string, s Settings, parts shared) Strategy

// shared holds the extractors built once per registry call. They are
// immutable and safe to share between strategies and requests.
type shared struct {
	decoder   *extract.EncodingResolver
	container *extract.ContainerExtractor
	markdown  *extract.MarkdownExtractor
}

var registry = map[string]builder{
	Direct: func(name string, s Settings, p shared) Strategy {
		return &HTMLStrategy{fetcher: s.fetcher(name, s.browserHeaders(), nil), decoder: p.decoder, extractor: p.container}
	},
	Reader: func(name string, s Settings, p shared) Strategy {
		base := s.ReaderBaseURL
		return &MarkdownStrategy{
			fetcher:   s.fetcher(name, nil, func(u string) string { return base + u }),
			extractor: p.markdown,
		}
	},
	Proxy: func(name string, s Settings, p shared) Strategy {
		base := s.ProxyBaseURL
		return &HTMLStrategy{
			fetcher:   s.fetcher(name, nil, func(u string) string { return base + url.QueryEscape(u) }),
			decoder:   p.decoder,
			extractor: p.container,
		}
	},
	Readability: func(name string, s Settings, p shared) Strategy {
		return &ReadabilityStrategy{
			fetcher:   s.fetcher(name, s.browserHeaders(), nil),
			decoder:   p.decoder,
			converter: md.NewConverter("", true, nil),
			extractor: p.markdown,
		}
	},
}

// Names lists every registered strategy, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildStrategies returns strategies in the given order. An unknown name is
// a NotFoundError; an empty list yields DefaultOrder.
func BuildStrategies(names []string, s Settings) ([]Strategy, error) {
	if len(names) == 0 {
		names = DefaultOrder
	}
	s = s.withDefaults()

	cfg := s.Extract
	parts := shared{
		decoder:   extract.NewEncodingResolver(cfg.Encodings, cfg.PreferValidUTF8),
		container: extract.NewContainerExtractor(cfg),
		markdown:  extract.NewMarkdownExtractor(cfg),
	}

	strategies := make([]Strategy, 0, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		build, ok := registry[name]
		if !ok {
			return nil, &coreerrors.NotFoundError{Resource: "strategy", ID: raw}
		}
		strategies = append(strategies, build(name, s, parts))
	}
	return strategies, nil
}

func (s Settings) withDefaults() Settings {
	if s.ReaderBaseURL == "" {
		s.ReaderBaseURL = "https://r.jina.ai/"
	}
	if s.ProxyBaseURL == "" {
		s.ProxyBaseURL = "https://api.allorigins.win/raw?url="
	}
	if s.AcceptLanguage == "" {
		s.AcceptLanguage = "he-IL,he;q=0.9,en;q=0.8"
	}
	if s.Referer == "" {
		s.Referer = "https://rotter.net/"
	}
	if s.UserAgent == "" {
		s.UserAgent = "Mozilla/5.0 (Linux; Android 10) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36"
	}
	return s
}

func (s Settings) browserHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      s.UserAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": s.AcceptLanguage,
		"Referer":         s.Referer,
	}
}

func (s Settings) fetcher(name string, headers map[string]string, target func(string) string) fetcher {
	timeout, ok := s.Timeouts[name]
	if !ok || timeout <= 0 {
		timeout = defaultTimeouts[name]
	}
	return fetcher{
		name:    name,
		client:  s.Client,
		timeout: timeout,
		limiter: newLimiter(s.RateLimits[name]),
		headers: headers,
		target:  target,
	}
}
