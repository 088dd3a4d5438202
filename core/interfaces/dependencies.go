// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

import "time"

// Clock returns the current time. Injected so scoring and recency filters are testable.
type Clock func() time.Time

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Clock provides the current time; nil means time.Now
	Clock Clock
}

// Now returns the current time from the configured clock
func (d Dependencies) Now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}

// Log returns the configured logger, or a no-op logger when none is set
func (d Dependencies) Log() Logger {
	if d.Logger == nil {
		return NopLogger{}
	}
	return d.Logger
}
