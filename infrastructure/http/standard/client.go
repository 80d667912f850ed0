// ABOUTME: Standard HTTP client implementation with optional retries and a capped response body
// ABOUTME: Article strategies use it single-shot; the feed poller opts into exponential backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"rotter-news-api/core/interfaces"
)

const (
	defaultUserAgent    = "RotterNewsAPI/1.0"
	defaultMaxBodyBytes = 5 << 20
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client       *http.Client
	userAgent    string
	maxAttempts  int
	maxBodyBytes int64
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithRetries enables up to n additional attempts on transport errors and 5xx responses.
func WithRetries(n int) Option {
	return func(c *StandardHTTPClient) {
		if n > 0 {
			c.maxAttempts = n + 1
		}
	}
}

// WithUserAgent sets the User-Agent sent when the caller supplies none.
func WithUserAgent(ua string) Option {
	return func(c *StandardHTTPClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodyBytes caps how much of a response body can be read.
func WithMaxBodyBytes(n int64) Option {
	return func(c *StandardHTTPClient) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// WithTransport replaces the underlying round tripper, e.g. to log outbound calls.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		if rt != nil {
			c.client.Transport = rt
		}
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout leaves deadlines entirely to the request context.
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent:    defaultUserAgent,
		maxAttempts:  1,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors, nor on the final attempt
		if resp.StatusCode < 500 || attempt == c.maxAttempts-1 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       &limitedBody{Reader: io.LimitReader(resp.Body, c.maxBodyBytes), Closer: resp.Body},
		headers:    resp.Header,
	}, nil
}

// limitedBody reads at most the configured number of bytes and closes the
// underlying connection body.
type limitedBody struct {
	io.Reader
	io.Closer
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
