package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          *CustomError
		expectedCode int
		expectedType string
	}{
		{
			name:         "bad request",
			err:          NewBadRequestError("unexpected EOF"),
			expectedCode: http.StatusBadRequest,
			expectedType: "invalid_request",
		},
		{
			name:         "validation",
			err:          NewValidationError("resume_text is required"),
			expectedCode: http.StatusBadRequest,
			expectedType: "validation_failed",
		},
		{
			name:         "internal",
			err:          NewInternalServerError("something broke"),
			expectedCode: http.StatusInternalServerError,
			expectedType: "internal_error",
		},
		{
			name:         "empty input",
			err:          NewEmptyInputError(),
			expectedCode: http.StatusBadRequest,
			expectedType: "empty_input",
		},
		{
			name:         "extraction",
			err:          NewExtractionError("no entries found"),
			expectedCode: http.StatusUnprocessableEntity,
			expectedType: "extraction_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.expectedType, tt.err.Type)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestCustomErrorMessage(t *testing.T) {
	withDetail := NewValidationError("resume_text is required")
	assert.Equal(t, "Request validation failed: resume_text is required", withDetail.Error())

	withoutDetail := NewEmptyInputError()
	assert.Equal(t, "Resume text is empty", withoutDetail.Error())
}
