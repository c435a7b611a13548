// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business
// logic. The label pipeline works entirely in memory: it makes no network
// calls and keeps no cache, so logging is the only external concern.
type Dependencies struct {
	// Logger provides structured logging
	Logger Logger
}
