// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client with default headers, optional retry and a body cap
// - logger/structured: logrus-backed structured logger plus a no-op logger
//
// # HTTP Client
//
// Retries are off unless requested. The feed path opts in; article strategies
// never retry:
//
//	client := standard.NewStandardHTTPClient(8*time.Second,
//	    standard.WithRetries(2),
//	    standard.WithMaxBodyBytes(5<<20),
//	)
//	resp, err := client.Get(ctx, "https://www.rotter.net/rss/rotternews.xml", nil)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.New(structured.Options{Level: "debug", Format: "text"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "strategy": "reader",
//	    "url":      link,
//	})
package infrastructure
