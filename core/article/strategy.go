// ABOUTME: Strategy contract and shared outbound fetch plumbing for article extraction
// ABOUTME: Each strategy owns its timeout, header set and optional rate limiter

package article

import (
	"context"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	coreerrors "rotter-news-api/core/errors"
	"rotter-news-api/core/interfaces"

	"golang.org/x/time/rate"
)

const previewRunes = 200

// Attempt is the outcome of one strategy call. Err is nil only when Body
// holds extracted text.
type Attempt struct {
	Status    int
	RawLength int
	Preview   string
	Body      string
	Err       error
}

// Strategy is one independent fetch+extract method in the chain.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, url string) Attempt
}

// fetcher issues a single GET for a strategy. It never retries.
type fetcher struct {
	name    string
	client  interfaces.HTTPClient
	timeout time.Duration
	limiter *rate.Limiter
	headers map[string]string
	target  func(url string) string
}

// page is what a fetch read, kept even when the status is an error.
type page struct {
	status      int
	raw         []byte
	contentType string
}

// fetch returns the response page. A non-2xx status is reported as an
// ExternalAPIError alongside whatever body was read.
func (f *fetcher) fetch(ctx context.Context, url string) (page, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return page{}, fmt.Errorf("waiting for outbound slot: %w", err)
		}
	}

	requestURL := url
	if f.target != nil {
		requestURL = f.target(url)
	}

	resp, err := f.client.Get(ctx, requestURL, f.headers)
	if err != nil {
		return page{}, err
	}
	body := resp.Body()
	defer body.Close()

	p := page{status: resp.StatusCode(), contentType: resp.Header("Content-Type")}
	p.raw, err = io.ReadAll(body)
	if err != nil {
		return p, fmt.Errorf("reading body: %w", err)
	}

	if p.status < 200 || p.status > 299 {
		return p, &coreerrors.ExternalAPIError{
			StatusCode: p.status,
			Message:    "unexpected status",
			API:        f.name,
		}
	}

	return p, nil
}

// newLimiter returns nil for a non-positive rate, meaning unlimited.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:previewRunes])
}

func notFound(url string) error {
	return &coreerrors.NotFoundError{Resource: "article body", ID: url}
}
