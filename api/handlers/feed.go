// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Serves the recent ticker entries from the news RSS feed

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"rotter-news-api/api/dto/mappers"
	"rotter-news-api/api/dto/requests"
	"rotter-news-api/api/dto/responses"
	"rotter-news-api/core/errors"
	"rotter-news-api/core/interfaces"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService  interfaces.FeedService
	defaultHours int
	maxHours     int
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService interfaces.FeedService, defaultHours, maxHours int) *FeedHandler {
	return &FeedHandler{
		feedService:  feedService,
		defaultHours: defaultHours,
		maxHours:     maxHours,
	}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getFeed",
		Method:      http.MethodGet,
		Path:        "/getFeed",
		Summary:     "Recent ticker entries",
		Description: "Fetches the news RSS feed and returns items published within the lookback window, newest first",
		Tags:        []string{"Feeds"},
	}, h.GetFeed)
}

// GetFeedOutput defines the output for the GetFeed operation
type GetFeedOutput struct {
	Body responses.FeedResponse
}

// GetFeed handles GET /getFeed
func (h *FeedHandler) GetFeed(ctx context.Context, input *requests.FeedRequest) (*GetFeedOutput, error) {
	if err := input.ApplyDefaults(h.defaultHours, h.maxHours); err != nil {
		return nil, toHumaError(err)
	}

	items, err := h.feedService.RecentItems(ctx, time.Duration(input.Hours)*time.Hour)
	if err != nil {
		if errors.IsValidation(err) {
			return nil, toHumaError(err)
		}
		return nil, huma.Error502BadGateway("Failed to fetch the feed", err)
	}

	return &GetFeedOutput{Body: mappers.ToFeedResponse(items)}, nil
}
