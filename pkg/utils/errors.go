package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a domain error that maps to an HTTP status code
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// NewBadRequestError returns a 400 error with the given message
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewNotResumeError returns a 400 error carrying the validator's localized
// rejection reason
func NewNotResumeError(reason string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: reason,
	}
}

// NewJobDescriptionError returns a 400 error for an unparseable job description
func NewJobDescriptionError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Failed to parse job description",
		Detail:  detail,
	}
}

// NewRateLimitError returns a 429 error with the retry narrative
func NewRateLimitError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusTooManyRequests,
		Message: message,
	}
}
