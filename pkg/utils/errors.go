package utils

import (
	"fmt"
	"net/http"
)

// CustomError carries an application error from its failure site to the
// HTTP envelope. Type is the machine-readable slug reported in the
// response body; Code is the HTTP status it maps to.
type CustomError struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Type:    "invalid_request",
		Message: "Invalid request body",
		Detail:  detail,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Type:    "validation_failed",
		Message: "Request validation failed",
		Detail:  detail,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Type:    "internal_error",
		Message: message,
	}
}

// Domain specific errors
func NewEmptyInputError() *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Type:    "empty_input",
		Message: "Resume text is empty",
	}
}

func NewExtractionError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Type:    "extraction_failed",
		Message: "Resume extraction failed",
		Detail:  detail,
	}
}
