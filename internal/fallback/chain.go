// Package fallback answers queries that no knowledge-base projection
// could handle, trying generative providers in strict priority order
// before settling on a fixed apology.
package fallback

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Apology is the guaranteed floor of the chain: the answer returned
// when every step fails or none are configured.
const Apology = "Sorry, I didn't understand that. You can ask about PHCET exam, courses, campus, or placements."

// Step is one strategy in the chain. Attempt returns the generated
// answer text; an error or empty text advances the chain to the next
// step.
type Step interface {
	Name() string
	Attempt(ctx context.Context, query string) (string, error)
}

// Sink receives queries that exhausted the chain, for later curation of
// the intent catalog. Implementations must never block the response;
// record failures are swallowed by the caller.
type Sink interface {
	Record(ctx context.Context, query string)
}

// Chain is the ordered fallback pipeline.
type Chain struct {
	steps  []Step
	misses Sink
	logger *zap.Logger
}

// NewChain creates a fallback chain. steps may be empty, in which case
// every query goes straight to the apology. misses may be nil.
func NewChain(steps []Step, misses Sink, logger *zap.Logger) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{steps: steps, misses: misses, logger: logger}
}

// Answer runs the chain for the query and always returns usable text.
// Steps run sequentially; a failure or timeout in one step never
// prevents the next from being attempted. When all steps are exhausted
// the query is recorded as a miss and the apology is returned.
func (c *Chain) Answer(ctx context.Context, query string) string {
	for _, step := range c.steps {
		text, err := step.Attempt(ctx, query)
		if err != nil {
			c.logger.Warn("fallback step failed",
				zap.String("step", step.Name()),
				zap.Error(err))
			continue
		}
		if answer := strings.TrimSpace(text); answer != "" {
			c.logger.Debug("fallback step answered", zap.String("step", step.Name()))
			return answer
		}
	}

	if c.misses != nil {
		c.misses.Record(ctx, query)
	}
	return Apology
}
