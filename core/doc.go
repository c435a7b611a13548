// Package core contains the business logic for the Article Labels API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ArticleIdentity, RenderOptions, RenderedArtifact)
// - payload: Canonical label payload encoding and decoding
// - symbol: QR symbol rendering and PNG rasterization service
// - export: File export, download packaging, and print document composition
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (logger, print surface)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "article-labels-api/core/interfaces"
//	    "article-labels-api/core/payload"
//	    "article-labels-api/core/symbol"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	// Create service
//	renderer := symbol.NewRenderer(deps)
//
//	// Encode an article identity and render its label
//	p, err := payload.Encode(domain.ArticleIdentity{
//	    ID:   "42",
//	    Code: "CER-100",
//	})
//	if err != nil {
//	    return err
//	}
//	artifact, err := renderer.Render(ctx, p, domain.DefaultRenderOptions())
//
package core
