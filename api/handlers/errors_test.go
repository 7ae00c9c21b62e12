package handlers

import (
	"fmt"
	"testing"

	"feed-resolver/core/errors"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "urls", Message: "too many"},
			expectedStatus: 400,
			expectedInMsg:  "too many",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("request: %w", &errors.ValidationError{Field: "url", Message: "is required"}),
			expectedStatus: 400,
			expectedInMsg:  "is required",
		},
		{
			name:           "InvalidURLError returns 400",
			input:          &errors.InvalidURLError{URL: "::", Err: fmt.Errorf("bad")},
			expectedStatus: 400,
			expectedInMsg:  "Invalid URL",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("boom"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toHumaError(tt.input)
			require.Error(t, err)

			statusErr, ok := err.(huma.StatusError)
			require.True(t, ok, "expected huma.StatusError, got %T", err)
			assert.Equal(t, tt.expectedStatus, statusErr.GetStatus())
			assert.Contains(t, statusErr.Error(), tt.expectedInMsg)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.NoError(t, toHumaError(nil))
}
