// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Renders every API error as {"error": msg} and maps domain errors to statuses

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"rotter-news-api/core/errors"
)

// ErrorModel is the body of every error response
type ErrorModel struct {
	Status  int    `json:"-"`
	Message string `json:"error" doc:"Human readable error message" example:"url: is required"`
}

// Error satisfies the error interface
func (e *ErrorModel) Error() string {
	return e.Message
}

// GetStatus satisfies huma.StatusError
func (e *ErrorModel) GetStatus() int {
	return e.Status
}

func init() {
	huma.NewError = newError
}

// newError replaces huma's problem+json model. Request validation failures
// are reported as 400 like every other input error.
func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, "; ")
	}

	return &ErrorModel{Status: status, Message: msg}
}

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsExternalAPI(err) {
		if apiErr, ok := err.(*errors.ExternalAPIError); ok && apiErr.StatusCode == http.StatusTooManyRequests {
			return huma.Error429TooManyRequests("Rate limited by upstream service")
		}
		return huma.Error502BadGateway("Upstream service error", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
