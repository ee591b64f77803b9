// Package engine orchestrates one chatbot turn: keyword matching,
// session carry-over, answer resolution, generative fallback and
// follow-up recommendation.
package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pillaihoc/phoccy/internal/fallback"
	"github.com/pillaihoc/phoccy/internal/followup"
	"github.com/pillaihoc/phoccy/internal/intent"
	"github.com/pillaihoc/phoccy/internal/resolver"
	"github.com/pillaihoc/phoccy/internal/session"
)

// EmptyQueryAnswer is returned for empty or whitespace-only queries.
// Such turns never reach the matcher, the fallback chain, the miss log
// or the session store.
const EmptyQueryAnswer = "Please enter a question."

// Result is the outcome of one turn.
type Result struct {
	Answer        string   `json:"answer"`
	NextQuestions []string `json:"next_questions"`
}

// Engine is the turn orchestrator. All collaborators are injected; the
// engine itself holds no per-turn state and is safe for concurrent use
// across sessions.
type Engine struct {
	matcher   *intent.Matcher
	resolver  *resolver.Resolver
	sessions  session.Store
	followups followup.Table
	chain     *fallback.Chain
	logger    *zap.Logger
}

// New creates an Engine.
func New(m *intent.Matcher, r *resolver.Resolver, s session.Store, f followup.Table, c *fallback.Chain, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		matcher:   m,
		resolver:  r,
		sessions:  s,
		followups: f,
		chain:     c,
		logger:    logger,
	}
}

// HandleQuery runs one full turn for the query and session. It always
// returns a non-empty answer; failures on the fallback path degrade to
// the fixed apology rather than an error.
func (e *Engine) HandleQuery(ctx context.Context, sessionID, query string) Result {
	if strings.TrimSpace(query) == "" {
		return Result{Answer: EmptyQueryAnswer, NextQuestions: []string{}}
	}

	// MATCHING: fresh keyword match first, then the session's carried
	// intent.
	effective, matched := e.matcher.Match(query)
	carried := false
	if !matched {
		if last := e.sessions.GetOrCreate(sessionID).LastIntent; last != "" {
			effective = last
			carried = true
		}
	}

	// RESOLVING.
	var answer string
	var resolved bool
	if effective != "" {
		answer, resolved = e.resolver.Resolve(effective)
	}

	// FALLING_BACK: the effective intent, if any, is kept for
	// recommendation and session-update purposes.
	if !resolved {
		answer = e.chain.Answer(ctx, query)
	}

	// RECOMMENDING: suggestions for the effective intent, then exactly
	// one session update with it (possibly clearing the carried topic).
	suggestions := e.followups.SuggestionsFor(effective)
	e.sessions.Update(sessionID, effective)

	e.logger.Debug("turn complete",
		zap.String("session", sessionID),
		zap.String("intent", effective),
		zap.Bool("carried", carried),
		zap.Bool("resolved", resolved))

	return Result{Answer: answer, NextQuestions: suggestions}
}

// Reset clears the carried topic for the session. Unknown sessions get
// a fresh empty context.
func (e *Engine) Reset(sessionID string) {
	e.sessions.Reset(sessionID)
}
