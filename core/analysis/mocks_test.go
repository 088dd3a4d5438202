package analysis

import (
	"context"
	"sync"
)

// mockGenerator returns scripted completions and records prompts
type mockGenerator struct {
	mu         sync.Mutex
	prompts    []Prompt
	completion Completion
	err        error
}

func (m *mockGenerator) Generate(ctx context.Context, prompt Prompt) (Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	return m.completion, m.err
}

func (m *mockGenerator) lastPrompt() Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return Prompt{}
	}
	return m.prompts[len(m.prompts)-1]
}
