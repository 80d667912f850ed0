package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "must be an absolute http(s) URL",
	}

	expected := "validation error on field 'url': must be an absolute http(s) URL"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "rotter-rss",
	}

	expected := "external API error from rotter-rss: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{Resource: "strategy", ID: "mirror"}

	expected := "strategy not found: mirror"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestStrategyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *StrategyError
		expected string
	}{
		{
			name:     "with cause",
			err:      &StrategyError{Strategy: "direct", Reason: "fetch failed", Err: context.DeadlineExceeded},
			expected: "strategy direct: fetch failed: context deadline exceeded",
		},
		{
			name:     "without cause",
			err:      &StrategyError{Strategy: "reader", Reason: "no qualifying content"},
			expected: "strategy reader: no qualifying content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("StrategyError.Error() = %v, want %v", tt.err.Error(), tt.expected)
			}
		})
	}
}

func TestStrategyError_UnwrapsCause(t *testing.T) {
	err := &StrategyError{Strategy: "proxy", Reason: "fetch failed", Err: context.DeadlineExceeded}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("StrategyError should unwrap to its cause")
	}
	if !IsStrategy(fmt.Errorf("chain: %w", err)) {
		t.Error("IsStrategy should return true for wrapped StrategyError")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "hours", Message: "out of range"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsExternalAPI(t *testing.T) {
	if !IsExternalAPI(&ExternalAPIError{StatusCode: 500, API: "rotter-rss"}) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
	if IsExternalAPI(errors.New("some other error")) {
		t.Error("IsExternalAPI should return false for non-ExternalAPIError")
	}
}

func TestIsNotFound_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("building chain: %w", &NotFoundError{Resource: "strategy", ID: "mirror"})

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
	if IsNotFound(errors.New("some other error")) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &ExternalAPIError{StatusCode: 502, Message: "bad gateway", API: "rotter-rss"}
	wrappedErr := WrapError(originalErr, "failed to fetch feed")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expectedMsg := "failed to fetch feed: external API error from rotter-rss: 502 - bad gateway"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsExternalAPI(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as ExternalAPIError")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	if WrapError(nil, "this should not happen") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
