package fallback

import (
	"context"
	"time"

	"github.com/pillaihoc/phoccy/internal/llm"
)

const systemPrompt = "You are PHOCCy, the helpdesk assistant for Pillai HOC campus. " +
	"Answer the visitor's question briefly and helpfully. If the question is not " +
	"about the campus or its colleges, say you can only help with campus topics."

// ProviderStep adapts an llm.Provider into a chain Step with its own
// bounded timeout, so a hanging provider cannot stall the turn.
type ProviderStep struct {
	name      string
	provider  llm.Provider
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewProviderStep wraps a provider. A zero timeout defaults to 10s.
func NewProviderStep(name string, provider llm.Provider, model string, maxTokens int, timeout time.Duration) *ProviderStep {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ProviderStep{
		name:      name,
		provider:  provider,
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func (s *ProviderStep) Name() string { return s.name }

func (s *ProviderStep) Attempt(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: query},
		},
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
