// ABOUTME: PrintSurface interface for presenting composed print documents
// ABOUTME: Models the isolated rendering surface whose creation may be denied

package interfaces

import "context"

// PrintSurface presents a self-contained print document to the user, for
// example by opening it in a browser window. Opening the surface is a
// fallible operation: implementations return an error when the surface
// cannot be created, and callers report that instead of failing the
// surrounding interaction.
type PrintSurface interface {
	// Present shows the document on the surface and triggers its print flow.
	// The document must be fully self-contained (no external references).
	Present(ctx context.Context, document []byte) error
}
