package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"rotter-news-api/api"
	"rotter-news-api/core/domain"
)

// newTestAPI builds a test API with the server's own Huma configuration so
// response bodies match production exactly.
func newTestAPI(t *testing.T) humatest.TestAPI {
	_, testAPI := humatest.New(t, api.NewConfig())
	return testAPI
}

// mockFeedService is a mock implementation of the feed service
type mockFeedService struct {
	recentItemsFunc func(ctx context.Context, lookback time.Duration) ([]domain.FeedItem, error)
}

func (m *mockFeedService) RecentItems(ctx context.Context, lookback time.Duration) ([]domain.FeedItem, error) {
	if m.recentItemsFunc != nil {
		return m.recentItemsFunc(ctx, lookback)
	}
	return nil, nil
}

// mockArticleService is a mock implementation of the article service
type mockArticleService struct {
	extractFunc  func(ctx context.Context, rawURL string) domain.ExtractionResult
	diagnoseFunc func(ctx context.Context, rawURL string) domain.Diagnostics
	calls        int
}

func (m *mockArticleService) Extract(ctx context.Context, rawURL string) domain.ExtractionResult {
	m.calls++
	if m.extractFunc != nil {
		return m.extractFunc(ctx, rawURL)
	}
	return domain.ExtractionResult{AllStrategiesFailed: true}
}

func (m *mockArticleService) Diagnose(ctx context.Context, rawURL string) domain.Diagnostics {
	m.calls++
	if m.diagnoseFunc != nil {
		return m.diagnoseFunc(ctx, rawURL)
	}
	return domain.Diagnostics{CanonicalURL: rawURL}
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, resp.Body.String())
	}
	return body
}
