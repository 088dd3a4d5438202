// ABOUTME: Analysis service asks a language model to profile ranked questions and draft replies
// ABOUTME: Reports progress milestones, estimates token cost and maps provider failures

package analysis

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"
	"unicode/utf8"

	"freelance-radar-api/core/domain"
	coreerrors "freelance-radar-api/core/errors"
	"freelance-radar-api/core/interfaces"
)

const (
	// CostPer1KTokens is the dollar price applied to the token estimate
	CostPer1KTokens = 0.002

	// MaxSuggestions bounds the number of keyword suggestions
	MaxSuggestions = 5
)

// Progress steps reported by Analyze
const (
	StepContext    = "Analyse du contexte"
	StepProcessing = "Traitement des résultats"
	StepFinalizing = "Finalisation"
)

const regenerateFallback = "Désolé, je n'ai pas pu générer une nouvelle réponse."

// Service analyses ranked feed items with a Generator
type Service struct {
	deps interfaces.Dependencies
	gen  Generator
}

// NewService creates a new analysis service
func NewService(deps interfaces.Dependencies, gen Generator) *Service {
	return &Service{deps: deps, gen: gen}
}

// Analyze profiles the authors of items, lists their pain points and drafts a
// reply per question
func (s *Service) Analyze(ctx context.Context, keyword, location string, items []domain.FeedItem, sink domain.ProgressSink) (*domain.Analysis, error) {
	logger := s.deps.Log()

	sink.Report(StepContext, 20)

	prompt, err := analysisPrompt(location, items)
	if err != nil {
		return nil, err
	}

	completion, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		logger.Error("Analysis generation failed", map[string]interface{}{
			"keyword": keyword,
			"error":   err.Error(),
		})
		return nil, providerError(err)
	}

	sink.Report(StepProcessing, 90)

	tokens := completion.TotalTokens
	if tokens <= 0 {
		tokens = EstimateTokens(prompt.System + prompt.User + completion.Text)
	}

	analysis := parseReply(completion.Text, items)
	analysis.Cost = domain.CostEstimate{Tokens: tokens, Cost: Cost(tokens)}

	logger.Info("Analysis completed", map[string]interface{}{
		"keyword":     keyword,
		"location":    location,
		"items":       len(items),
		"tokens":      tokens,
		"pain_points": len(analysis.PainPoints),
	})

	sink.Report(StepFinalizing, 100)
	return &analysis, nil
}

// Suggest returns up to MaxSuggestions related search terms. Suggestions are
// best effort: a blank input or a provider failure yields an empty list.
func (s *Service) Suggest(ctx context.Context, input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return []string{}, nil
	}

	completion, err := s.gen.Generate(ctx, suggestionPrompt(input))
	if err != nil {
		s.deps.Log().Warn("Suggestion generation failed", map[string]interface{}{
			"input": input,
			"error": err.Error(),
		})
		return []string{}, nil
	}

	return splitSuggestions(completion.Text, MaxSuggestions), nil
}

// Regenerate drafts a new reply to one question from a different angle
func (s *Service) Regenerate(ctx context.Context, title, content, location string) (string, error) {
	completion, err := s.gen.Generate(ctx, regeneratePrompt(title, content, location))
	if err != nil {
		s.deps.Log().Error("Response regeneration failed", map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
		return "", providerError(err)
	}

	if text := strings.TrimSpace(completion.Text); text != "" {
		return text, nil
	}
	return regenerateFallback, nil
}

// EstimateTokens approximates the token count of text at four characters per token
func EstimateTokens(text string) int {
	return int(math.Ceil(float64(utf8.RuneCountInString(text)) / 4))
}

// Cost returns the dollar cost of tokens
func Cost(tokens int) float64 {
	return float64(tokens) / 1000 * CostPer1KTokens
}

// providerError normalizes a generator failure into an ExternalAPIError with a
// user-facing message for the statuses users can act on
func providerError(err error) error {
	var apiErr *coreerrors.ExternalAPIError
	if !errors.As(err, &apiErr) {
		return &coreerrors.ExternalAPIError{
			API:     "llm",
			Message: err.Error(),
			Err:     err,
		}
	}

	mapped := *apiErr
	if msg := userMessage(apiErr.StatusCode); msg != "" {
		mapped.Message = msg
	}
	mapped.Err = err
	return &mapped
}

func userMessage(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "Clé API invalide ou expirée. Vérifie ta clé."
	case status == http.StatusTooManyRequests:
		return "Limite de requêtes atteinte. Réessaie dans quelques minutes."
	case status >= http.StatusInternalServerError:
		return "Erreur du service d'analyse. Réessaie."
	default:
		return ""
	}
}
