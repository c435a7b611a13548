// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as logging and presenting print documents.
//
// The infrastructure package is organized by technical concern:
//
// - logger/logrus: Structured logger implementation backed by logrus
// - surface/browser: Print surface that opens documents in the local browser
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include cleanup, timeouts, and error handling
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger()
//	logger.Info("Rendering label", map[string]interface{}{
//	    "article_id": "42",
//	    "code":       "CER-100",
//	})
//
// # Print Surface
//
// The browser surface writes the composed document to a temporary file and
// opens it in the default browser, where the document triggers the platform
// print flow:
//
//	surface := browser.NewBrowserSurface(2 * time.Minute)
//	err := surface.Present(ctx, document)
//	if err != nil {
//	    // The print action did not proceed
//	}
package infrastructure
