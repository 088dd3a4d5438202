// ABOUTME: Custom error types for the core business logic
// ABOUTME: Models the per-source failure taxonomy and the API-facing errors

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
	Err        error
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// Unwrap returns the underlying cause
func (e *ExternalAPIError) Unwrap() error {
	return e.Err
}

// SourceUnavailableError is a network, HTTP or timeout failure for one feed source.
// It is always recovered locally: the source contributes no items.
type SourceUnavailableError struct {
	Source     string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *SourceUnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("source %s unavailable: HTTP %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause
func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// ParseError is a malformed or unrecognized feed document
type ParseError struct {
	Source       string
	Unrecognized bool
	Err          error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Unrecognized {
		return fmt.Sprintf("source %s: unrecognized feed document", e.Source)
	}
	return fmt.Sprintf("source %s: malformed feed document: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
