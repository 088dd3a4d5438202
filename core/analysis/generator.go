// ABOUTME: Generator abstracts the language model used to analyse ranked questions
// ABOUTME: Implementations live in infrastructure; tests use a scripted fake

package analysis

import "context"

// Prompt is one chat-style request to a language model
type Prompt struct {
	System      string
	User        string
	Temperature float32

	// MaxTokens caps the reply length; 0 leaves it to the model
	MaxTokens int
}

// Completion is the model reply
type Completion struct {
	Text string

	// TotalTokens is the usage reported by the provider, 0 when unknown
	TotalTokens int
}

// Generator produces completions. Errors carrying an HTTP status should be
// returned as *errors.ExternalAPIError so they can be mapped to user messages.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (Completion, error)
}
