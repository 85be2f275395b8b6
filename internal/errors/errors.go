// Package errors defines the structured error envelope the web shell
// returns and the mapping from pipeline errors onto it.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"schedgen/internal/report"
)

// APIError represents a structured API error response.
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details.
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error types for common scenarios.
var (
	ErrInvalidRequest    = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrValidationFailed  = New(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed")
	ErrRateLimitExceeded = New(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")
	ErrInternalServer    = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// InvalidRequestWithError creates an invalid request error with details.
func InvalidRequestWithError(err error) *APIError {
	return NewWithDetails(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format", err.Error())
}

// FromReportError maps a pipeline error onto the API error envelope.
func FromReportError(err error) *APIError {
	var pathErr *report.InvalidPathError
	if errors.As(err, &pathErr) {
		return NewWithDetails(http.StatusBadRequest, "INVALID_PATH",
			"Input file or output directory is missing or unusable", err.Error())
	}

	var fieldErr *report.MissingFieldError
	if errors.As(err, &fieldErr) {
		return NewWithDetails(http.StatusUnprocessableEntity, "MISSING_FIELD",
			"A required CSV column is absent", err.Error())
	}

	var csvErr *report.MalformedCSVError
	if errors.As(err, &csvErr) {
		return NewWithDetails(http.StatusUnprocessableEntity, "MALFORMED_CSV",
			"The input file cannot be parsed as CSV", err.Error())
	}

	return NewWithDetails(http.StatusInternalServerError, "REPORT_FAILED",
		"Report generation failed", err.Error())
}

// WriteJSON writes an error response envelope directly to the response
// writer, for paths outside the chi render flow (middleware, panics).
func WriteJSON(w http.ResponseWriter, err *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	json.NewEncoder(w).Encode(NewErrorResponse(err))
}

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   err,
	}
}

// Render implements the render.Renderer interface.
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.Error.Render(w, r)
}
