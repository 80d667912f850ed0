// ABOUTME: Response DTOs for article extraction endpoints
// ABOUTME: Covers the extracted body, per-strategy diagnostics and health

package responses

import "rotter-news-api/core/domain"

// ArticleResponse carries the extracted article text. An empty body means no
// strategy found readable text.
type ArticleResponse struct {
	Body string `json:"body" doc:"Plain article text, empty when nothing could be extracted"`
}

// DiagnosticsResponse reports how every strategy fared on one URL
type DiagnosticsResponse struct {
	CanonicalURL string                  `json:"canonicalUrl" doc:"URL after gateway rewriting"`
	Strategies   []domain.StrategyReport `json:"strategies" doc:"One report per configured strategy, in order"`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
