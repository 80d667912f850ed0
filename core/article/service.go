// ABOUTME: Article service: validates and canonicalizes a link, then runs the strategy chain
// ABOUTME: Implements interfaces.ArticleService for the API layer

package article

import (
	"context"
	"net/url"
	"strings"

	"rotter-news-api/core/domain"
	coreerrors "rotter-news-api/core/errors"
	"rotter-news-api/core/extract"
)

// Service implements interfaces.ArticleService
type Service struct {
	canonicalizer *extract.Canonicalizer
	chain         *Chain
}

// NewService creates an article service
func NewService(canonicalizer *extract.Canonicalizer, chain *Chain) *Service {
	if canonicalizer == nil {
		canonicalizer = extract.NewCanonicalizer(extract.DefaultCanonicalConfig())
	}
	return &Service{canonicalizer: canonicalizer, chain: chain}
}

// Extract implements interfaces.ArticleService
func (s *Service) Extract(ctx context.Context, rawURL string) domain.ExtractionResult {
	canonical := s.canonicalizer.Canonicalize(rawURL)
	result := s.chain.Run(ctx, canonical)
	result.CanonicalURL = canonical
	return result
}

// Diagnose implements interfaces.ArticleService
func (s *Service) Diagnose(ctx context.Context, rawURL string) domain.Diagnostics {
	canonical := s.canonicalizer.Canonicalize(rawURL)
	return domain.Diagnostics{
		CanonicalURL: canonical,
		Strategies:   s.chain.Diagnose(ctx, canonical),
	}
}

// ValidateURL rejects anything that is not an absolute http(s) URL with a host.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "parameter is required"}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return &coreerrors.ValidationError{Field: "url", Message: "not a valid URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &coreerrors.ValidationError{Field: "url", Message: "scheme must be http or https"}
	}
	if u.Host == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "host is missing"}
	}
	return nil
}
