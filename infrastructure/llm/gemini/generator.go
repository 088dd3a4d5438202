// ABOUTME: Gemini implementation of the analysis Generator
// ABOUTME: Sends system and user prompts through google.golang.org/genai and reports token usage

package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freelance-radar-api/core/analysis"
	coreerrors "freelance-radar-api/core/errors"

	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured
const DefaultModel = "gemini-2.5-flash"

const apiName = "gemini"

// contentGenerator is the subset of *genai.Models used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator implements analysis.Generator on the Gemini API
type Generator struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// Option configures a Generator
type Option func(*Generator)

// WithTimeout bounds every model call
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator creates a Gemini-backed generator
func NewGenerator(ctx context.Context, apiKey, model string, opts ...Option) (*Generator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	g := newGenerator(client.Models, model)
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func newGenerator(models contentGenerator, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{models: models, model: model}
}

// Generate sends the prompt and returns the reply text with its token usage
func (g *Generator) Generate(ctx context.Context, prompt analysis.Prompt) (analysis.Completion, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(prompt.Temperature),
	}
	if prompt.System != "" {
		config.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}
	if prompt.MaxTokens > 0 {
		config.MaxOutputTokens = int32(prompt.MaxTokens)
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt.User, genai.RoleUser)}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return analysis.Completion{}, toExternalError(err)
	}

	completion := analysis.Completion{Text: resp.Text()}
	if resp.UsageMetadata != nil {
		completion.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return completion, nil
}

// toExternalError keeps the HTTP status of Gemini API errors
func toExternalError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
			Err:        err,
		}
	}
	return &coreerrors.ExternalAPIError{
		API:     apiName,
		Message: "gemini API call failed",
		Err:     err,
	}
}
