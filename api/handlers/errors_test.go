package handlers

import (
	"fmt"
	"testing"

	"freelance-radar-api/core/errors"
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
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "keyword", Message: "cannot be empty"},
			expectedStatus: 400,
			expectedInMsg:  "keyword",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "Erreur du service d'analyse. Réessaie."},
			expectedStatus: 503,
			expectedInMsg:  "Erreur du service d'analyse",
		},
		{
			name:           "ExternalAPIError without status returns 503",
			input:          &errors.ExternalAPIError{API: "llm", Message: "connexion refusée"},
			expectedStatus: 503,
			expectedInMsg:  "connexion refusée",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "Limite de requêtes atteinte. Réessaie dans quelques minutes."},
			expectedStatus: 429,
			expectedInMsg:  "Limite de requêtes atteinte",
		},
		{
			name:           "ExternalAPIError with 401 returns 502",
			input:          &errors.ExternalAPIError{StatusCode: 401, Message: "Clé API invalide ou expirée. Vérifie ta clé."},
			expectedStatus: 502,
			expectedInMsg:  "Clé API invalide",
		},
		{
			name:           "ExternalAPIError with 400 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 400, Message: "bad request"},
			expectedStatus: 400,
			expectedInMsg:  "bad request",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedInMsg:  "Unexpected external service response",
		},
		{
			name:           "wrapped ExternalAPIError keeps its mapping",
			input:          fmt.Errorf("analyze: %w", &errors.ExternalAPIError{StatusCode: 503, Message: "indisponible"}),
			expectedStatus: 503,
			expectedInMsg:  "indisponible",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("request: %w", &errors.ValidationError{Field: "keyword", Message: "cannot be empty"}),
			expectedStatus: 400,
			expectedInMsg:  "cannot be empty",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			require.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}
