// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"freelance-radar-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExternalAPI(err) {
		var apiErr *errors.ExternalAPIError
		stderrors.As(err, &apiErr)
		// Message carries the user-facing text of the analysis provider
		switch {
		case apiErr.StatusCode == 0 || apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable(apiErr.Message, err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests(apiErr.Message)
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return huma.Error502BadGateway(apiErr.Message, err)
		case apiErr.StatusCode >= 400:
			return huma.Error400BadRequest(apiErr.Message, err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
