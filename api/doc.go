// Package api provides the HTTP API layer for the article label service.
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
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type RenderOptionsRequest struct {
//	    Width      int    `json:"width,omitempty" minimum:"1" maximum:"4096"`
//	    Margin     *int   `json:"margin,omitempty" minimum:"0" maximum:"32"`
//	    Foreground string `json:"foreground,omitempty" pattern:"^#?[0-9a-fA-F]{6}$"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling (when configured)
//
// # Usage Example
//
//	// Create API with middleware
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  20,
//	    RateWindow: time.Minute,
//	})
//
//	// Register handlers
//	labelHandler := handlers.NewLabelHandler(renderer, exporter, defaults)
//	labelHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "validation error on field 'code': code cannot be empty",
//	    "instance": "/labels/render"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
