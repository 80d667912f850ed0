package interfaces

import (
	"context"
	"io"
)

// HTTPClient performs outbound GETs for the feed and the article strategies.
// Each strategy presents its own header set (browser impersonation, reader
// service options), so headers are passed per call.
type HTTPClient interface {
	// Get fetches url with the given request headers. A nil map sends only
	// the client's default headers. Non-2xx answers are returned, not errors.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Response is the subset of an HTTP response the core reads.
type Response interface {
	StatusCode() int

	// Body must be closed by the caller.
	Body() io.ReadCloser

	// Header returns the named header, or "" when absent. Names are
	// case-insensitive; strategies read Content-Type for the charset hint.
	Header(key string) string
}
