// ABOUTME: Metrics interface for extraction outcomes
// ABOUTME: Lets the strategy chain report without depending on a metrics backend

package interfaces

import "time"

// Outcome labels reported to Metrics
const (
	OutcomeQualified = "qualified"
	OutcomeFailed    = "failed"
	OutcomeFound     = "found"
	OutcomeEmpty     = "empty"
)

// Metrics records how article extraction performs
type Metrics interface {
	// ObserveStrategy records one strategy attempt inside a chain run.
	ObserveStrategy(strategy, outcome string, elapsed time.Duration)

	// ObserveExtraction records the final outcome of a chain run.
	ObserveExtraction(outcome string)
}
