// Package api provides the HTTP API layer for the Rotter news ticker.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and middleware stack
// - handlers/: HTTP request handlers
// - dto/: query parameter and response shapes, plus domain mappers
// - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
//	GET /getFeed?hours=N             recent ticker entries, newest first
//	GET /getArticle?url=...          plain article text
//	GET /getArticle/diagnostics?url= per-strategy report (feature flagged)
//	GET /healthz                     liveness
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPI(api.APIConfig{
//	    Logger:      logger,
//	    CORSOrigins: []string{"*"},
//	})
//
//	handlers.NewFeedHandler(feedService, 4, 48).RegisterRoutes(humaAPI)
//	handlers.NewArticleHandler(articleService, flags).RegisterRoutes(humaAPI)
//	handlers.RegisterHealth(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Every error response has the same flat shape:
//
//	{"error": "validation error on field 'url': parameter is required"}
//
// Missing or malformed input is a 400. An article that cannot be extracted is
// not an error: /getArticle answers 200 with an empty body. Upstream feed
// failures are a 502.
package api
