// ABOUTME: Concrete fetch strategies: raw HTML via container extraction, reader-service markdown,
// ABOUTME: and a readability pass that scores the converted markdown

package article

import (
	"context"
	"net/url"
	"strings"

	"rotter-news-api/core/extract"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

// HTMLStrategy fetches raw page bytes, resolves their encoding and runs the
// container extractor. Both the direct fetch and the CORS proxy use it.
type HTMLStrategy struct {
	fetcher
	decoder   *extract.EncodingResolver
	extractor *extract.ContainerExtractor
}

// Name implements Strategy
func (s *HTMLStrategy) Name() string { return s.name }

// Attempt implements Strategy
func (s *HTMLStrategy) Attempt(ctx context.Context, url string) Attempt {
	p, err := s.fetch(ctx, url)
	text := s.decoder.Decode(p.raw, p.contentType)
	a := Attempt{Status: p.status, RawLength: len(p.raw), Preview: preview(text)}
	if err != nil {
		a.Err = err
		return a
	}

	body, ok := s.extractor.Extract(text)
	if !ok {
		a.Err = notFound(url)
		return a
	}
	a.Body = body
	return a
}

// MarkdownStrategy reads a reader-service rendering and runs the markdown extractor.
type MarkdownStrategy struct {
	fetcher
	extractor *extract.MarkdownExtractor
}

// Name implements Strategy
func (s *MarkdownStrategy) Name() string { return s.name }

// Attempt implements Strategy
func (s *MarkdownStrategy) Attempt(ctx context.Context, url string) Attempt {
	p, err := s.fetch(ctx, url)
	text := strings.ToValidUTF8(string(p.raw), "\uFFFD")
	a := Attempt{Status: p.status, RawLength: len(p.raw), Preview: preview(text)}
	if err != nil {
		a.Err = err
		return a
	}

	body, ok := s.extractor.Extract(text)
	if !ok {
		a.Err = notFound(url)
		return a
	}
	a.Body = body
	return a
}

// ReadabilityStrategy fetches the page directly, isolates the main article
// with go-readability, converts it to markdown and keeps the best prose block.
type ReadabilityStrategy struct {
	fetcher
	decoder   *extract.EncodingResolver
	converter *md.Converter
	extractor *extract.MarkdownExtractor
}

// Name implements Strategy
func (s *ReadabilityStrategy) Name() string { return s.name }

// Attempt implements Strategy
func (s *ReadabilityStrategy) Attempt(ctx context.Context, pageURL string) Attempt {
	p, err := s.fetch(ctx, pageURL)
	text := s.decoder.Decode(p.raw, p.contentType)
	a := Attempt{Status: p.status, RawLength: len(p.raw), Preview: preview(text)}
	if err != nil {
		a.Err = err
		return a
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		a.Err = err
		return a
	}

	doc, err := readability.FromReader(strings.NewReader(text), parsed)
	if err != nil {
		a.Err = err
		return a
	}

	markdown, err := s.converter.ConvertString(doc.Content)
	if err != nil {
		a.Err = err
		return a
	}

	body, ok := s.extractor.BestBlock(markdown)
	if !ok {
		a.Err = notFound(pageURL)
		return a
	}
	a.Body = body
	return a
}
