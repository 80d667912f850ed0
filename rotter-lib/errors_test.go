package rotter

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := NewError(ErrorTypeNetwork, "failed to fetch the feed").WithCause(errors.New("timeout"))

	want := "network: failed to fetch the feed (caused by: timeout)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, err.Cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}

func TestErrorTypeChecks_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading: %w", NewError(ErrorTypeValidation, "bad"))

	if !IsValidationError(err) {
		t.Error("expected wrapped validation error to be detected")
	}
	if IsNetworkError(err) || IsConfigurationError(err) {
		t.Error("unexpected type match")
	}
	if IsValidationError(errors.New("plain")) {
		t.Error("plain errors have no type")
	}
}
