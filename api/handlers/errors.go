// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"article-labels-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	// Check for specific error types
	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsRender(err) {
		return huma.Error500InternalServerError("Label rendering failed", err)
	}

	if errors.IsPrintBlocked(err) {
		return huma.Error503ServiceUnavailable("Print surface unavailable", err)
	}

	if errors.IsExport(err) {
		return huma.Error500InternalServerError("Label export failed", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
