// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"feed-resolver/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Resolution failures are not errors at this layer; they are reported
// per URL in the response body.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsInvalidURL(err) {
		return huma.Error400BadRequest("Invalid URL", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
