// ABOUTME: Request DTOs for feed-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

import (
	"fmt"

	"rotter-news-api/core/errors"
)

// FeedRequest holds the query parameters of GET /getFeed
type FeedRequest struct {
	// Hours is the lookback window; zero means the configured default
	Hours int `query:"hours" doc:"Lookback window in hours" example:"4"`
}

// ApplyDefaults fills in the default lookback and rejects values outside
// 1..maxHours
func (r *FeedRequest) ApplyDefaults(defaultHours, maxHours int) error {
	if r.Hours == 0 {
		r.Hours = defaultHours
	}
	if r.Hours < 1 || r.Hours > maxHours {
		return &errors.ValidationError{
			Field:   "hours",
			Message: fmt.Sprintf("must be between 1 and %d", maxHours),
		}
	}
	return nil
}
