// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates caller mistakes, upstream failures and strategy-local misses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-2xx answer from an upstream service
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// StrategyError records why one fetch strategy produced nothing usable.
// It never leaves the strategy chain.
type StrategyError struct {
	Strategy string
	Reason   string
	Err      error
}

// Error implements the error interface
func (e *StrategyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("strategy %s: %s: %v", e.Strategy, e.Reason, e.Err)
	}
	return fmt.Sprintf("strategy %s: %s", e.Strategy, e.Reason)
}

// Unwrap returns the underlying cause
func (e *StrategyError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
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

// IsStrategy checks if an error is a StrategyError
func IsStrategy(err error) bool {
	var strategyErr *StrategyError
	return errors.As(err, &strategyErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
