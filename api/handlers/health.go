// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports configured sources, lexicon version and analysis availability

package handlers

import (
	"context"
	"net/http"

	"freelance-radar-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports service status
type HealthHandler struct {
	sources        SourceLister
	lexiconVersion string
	analysis       bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sources SourceLister, lexiconVersion string, analysis bool) *HealthHandler {
	return &HealthHandler{sources: sources, lexiconVersion: lexiconVersion, analysis: analysis}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /healthz endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:   "ok",
			Sources:  len(h.sources.Sources()),
			Analysis: h.analysis,
			Lexicon:  h.lexiconVersion,
		},
	}, nil
}
