// Package api provides the HTTP API layer for the Freelance Radar application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type SearchInput struct {
//	    Keyword  string `query:"keyword" required:"true" minLength:"1" maxLength:"200"`
//	    Location string `query:"location" maxLength:"100"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
// - Request timeouts
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:         logger,
//	    RateLimiter:    middleware.NewRateLimiter(2, 5, 0),
//	    RequestTimeout: 45 * time.Second,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	handlers.NewSearchHandler(ranker, registry).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 503,
//	    "title": "Service Unavailable",
//	    "detail": "Erreur du service d'analyse. Réessaie."
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
