// ABOUTME: Response DTOs for feed-related API endpoints
// ABOUTME: Shapes the ticker entries returned by GET /getFeed

package responses

// FeedResponse lists recent ticker entries, newest first
type FeedResponse struct {
	Entries []FeedEntry `json:"entries" doc:"Recent news items, newest first"`
}

// FeedEntry is a single ticker line
type FeedEntry struct {
	Title     string `json:"title" doc:"Headline with HTML entities decoded"`
	Link      string `json:"link" doc:"Article link as published in the feed"`
	Date      string `json:"date" doc:"Publish time formatted HH:mm" example:"14:05"`
	Timestamp int64  `json:"timestamp" doc:"Publish time as unix seconds"`
	MediaURL  string `json:"mediaUrl,omitempty" doc:"Attached image, if any"`
	MediaType string `json:"mediaType,omitempty" doc:"MIME type of the attached media"`
}
