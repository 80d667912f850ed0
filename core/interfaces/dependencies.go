// ABOUTME: Collaborators shared by the feed and article services
// ABOUTME: Outbound HTTP, logging and optional extraction metrics

package interfaces

// Dependencies groups what the core services need from the outside world.
type Dependencies struct {
	HTTPClient HTTPClient
	Logger     Logger

	// Metrics may be nil; outcomes are then not recorded.
	Metrics Metrics
}
