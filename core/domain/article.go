// ABOUTME: Domain models for article body extraction
// ABOUTME: Extraction results and per-strategy diagnostic reports

package domain

// ExtractionResult is the outcome of running the strategy chain for one URL.
// Body is empty when every strategy failed; it is never an error.
type ExtractionResult struct {
	Body                string
	StrategyUsed        string
	CanonicalURL        string
	AllStrategiesFailed bool
}

// StrategyReport describes what a single strategy produced for a URL.
type StrategyReport struct {
	Name       string `json:"name"`
	Status     int    `json:"status"`
	RawLength  int    `json:"rawLength"`
	BodyLength int    `json:"bodyLength"`
	Preview    string `json:"preview"`
	Error      string `json:"error,omitempty"`
	ElapsedMS  int64  `json:"elapsedMs"`
	Qualified  bool   `json:"qualified"`
}

// Diagnostics collects the independent outcome of every configured strategy.
type Diagnostics struct {
	CanonicalURL string           `json:"canonicalUrl"`
	Strategies   []StrategyReport `json:"strategies"`
}
