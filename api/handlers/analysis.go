// ABOUTME: Analysis handlers for the Huma API
// ABOUTME: Runs a ranking then asks the language model for profiles, replies and suggestions

package handlers

import (
	"context"
	"net/http"
	"sync"

	"freelance-radar-api/api/dto/mappers"
	"freelance-radar-api/api/dto/requests"
	"freelance-radar-api/api/dto/responses"
	"freelance-radar-api/core/domain"
	"freelance-radar-api/core/interfaces"
	"freelance-radar-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// AnalysisHandler handles the language model endpoints
type AnalysisHandler struct {
	ranker   interfaces.Ranker
	analyzer interfaces.Analyzer
	flags    featureflags.Manager
}

// NewAnalysisHandler creates a new analysis handler. A nil analyzer keeps the
// routes registered but makes them answer 503.
func NewAnalysisHandler(ranker interfaces.Ranker, analyzer interfaces.Analyzer, flags featureflags.Manager) *AnalysisHandler {
	return &AnalysisHandler{ranker: ranker, analyzer: analyzer, flags: flags}
}

// RegisterRoutes registers all analysis-related routes
func (h *AnalysisHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze",
		Method:      http.MethodPost,
		Path:        "/analyze",
		Summary:     "Rank and analyse posts",
		Description: "Ranks posts for a keyword, then describes the authors, their pain points and a suggested reply for each post",
		Tags:        []string{"Analysis"},
	}, h.Analyze)

	huma.Register(api, huma.Operation{
		OperationID: "suggestions",
		Method:      http.MethodPost,
		Path:        "/suggestions",
		Summary:     "Suggest search terms",
		Description: "Returns up to five freelance activities related to a partial input",
		Tags:        []string{"Analysis"},
	}, h.Suggestions)

	huma.Register(api, huma.Operation{
		OperationID: "regenerate",
		Method:      http.MethodPost,
		Path:        "/regenerate",
		Summary:     "Draft a new reply",
		Description: "Drafts a new reply to a single question",
		Tags:        []string{"Analysis"},
	}, h.Regenerate)
}

func (h *AnalysisHandler) available(ctx context.Context) error {
	if h.analyzer == nil {
		return huma.Error503ServiceUnavailable("analysis is not configured")
	}
	if h.flags != nil && !h.flags.IsEnabled(ctx, featureflags.AnalysisEnabled) {
		return huma.Error503ServiceUnavailable("analysis is disabled")
	}
	return nil
}

// AnalyzeInput defines the input for the Analyze operation
type AnalyzeInput struct {
	Body requests.AnalyzeRequest
}

// AnalyzeOutput defines the output for the Analyze operation
type AnalyzeOutput struct {
	Body responses.AnalyzeResponse
}

// Analyze handles the POST /analyze endpoint
func (h *AnalysisHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	if err := h.available(ctx); err != nil {
		return nil, err
	}

	input.Body.Normalize()
	if input.Body.Keyword == "" {
		return nil, huma.Error400BadRequest("keyword cannot be blank")
	}

	var (
		mu       sync.Mutex
		progress []domain.AnalysisProgress
		sink     domain.ProgressSink
	)
	if h.flags != nil && h.flags.IsEnabled(ctx, featureflags.ProgressEnabled) {
		sink = func(p domain.AnalysisProgress) {
			mu.Lock()
			progress = append(progress, p)
			mu.Unlock()
		}
	}

	items := h.ranker.RankWithProgress(ctx, input.Body.Keyword, input.Body.Location, sink)
	analysis, err := h.analyzer.Analyze(ctx, input.Body.Keyword, input.Body.Location, items, sink)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &AnalyzeOutput{
		Body: *mappers.ToAnalyzeResponse(input.Body.Keyword, input.Body.Location, items, analysis, progress),
	}, nil
}

// SuggestionsInput defines the input for the Suggestions operation
type SuggestionsInput struct {
	Body requests.SuggestionsRequest
}

// SuggestionsOutput defines the output for the Suggestions operation
type SuggestionsOutput struct {
	Body responses.SuggestionsResponse
}

// Suggestions handles the POST /suggestions endpoint
func (h *AnalysisHandler) Suggestions(ctx context.Context, input *SuggestionsInput) (*SuggestionsOutput, error) {
	if err := h.available(ctx); err != nil {
		return nil, err
	}

	suggestions, err := h.analyzer.Suggest(ctx, input.Body.Input)
	if err != nil {
		return nil, toHumaError(err)
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	return &SuggestionsOutput{
		Body: responses.SuggestionsResponse{Suggestions: suggestions},
	}, nil
}

// RegenerateInput defines the input for the Regenerate operation
type RegenerateInput struct {
	Body requests.RegenerateRequest
}

// RegenerateOutput defines the output for the Regenerate operation
type RegenerateOutput struct {
	Body responses.RegenerateResponse
}

// Regenerate handles the POST /regenerate endpoint
func (h *AnalysisHandler) Regenerate(ctx context.Context, input *RegenerateInput) (*RegenerateOutput, error) {
	if err := h.available(ctx); err != nil {
		return nil, err
	}

	input.Body.Normalize()
	text, err := h.analyzer.Regenerate(ctx, input.Body.Title, input.Body.Content, input.Body.Location)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RegenerateOutput{
		Body: responses.RegenerateResponse{Response: text},
	}, nil
}
