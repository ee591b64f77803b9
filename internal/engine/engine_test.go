package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/pillaihoc/phoccy/internal/fallback"
	"github.com/pillaihoc/phoccy/internal/followup"
	"github.com/pillaihoc/phoccy/internal/intent"
	"github.com/pillaihoc/phoccy/internal/kb"
	"github.com/pillaihoc/phoccy/internal/resolver"
	"github.com/pillaihoc/phoccy/internal/session"
)

type recordingSink struct {
	recorded []string
}

func (r *recordingSink) Record(ctx context.Context, query string) {
	r.recorded = append(r.recorded, query)
}

type failingStep struct{ calls int }

func (f *failingStep) Name() string { return "failing" }

func (f *failingStep) Attempt(ctx context.Context, query string) (string, error) {
	f.calls++
	return "", errors.New("unavailable")
}

func testKB() *kb.KnowledgeBase {
	return &kb.KnowledgeBase{
		PHCET: kb.Institute{Overview: "PHCET is the common entrance test."},
		General: kb.General{
			Campus:   kb.Campus{Overview: "A green campus."},
			Contacts: kb.Contacts{Email: "info@phc.ac.in"},
		},
	}
}

// newEngine builds an engine over the default catalog with no fallback
// providers, returning its collaborators for inspection.
func newEngine(t *testing.T) (*Engine, *session.MemoryStore, *recordingSink) {
	t.Helper()
	catalog := intent.DefaultCatalog()
	sessions := session.NewMemoryStore()
	sink := &recordingSink{}
	e := New(
		intent.NewMatcher(catalog),
		resolver.New(testKB()),
		sessions,
		followup.NewTable(catalog),
		fallback.NewChain(nil, sink, zap.NewNop()),
		zap.NewNop(),
	)
	return e, sessions, sink
}

func TestFreshMatchReturnsResolverText(t *testing.T) {
	e, _, _ := newEngine(t)

	res := e.HandleQuery(context.Background(), "s1", "What is PHCET?")
	if res.Answer == "" || res.Answer == fallback.Apology {
		t.Fatalf("Answer = %q, want KB-backed text", res.Answer)
	}
	want := "PHCET is the common entrance test.\n\nYou can ask how to apply or about the syllabus."
	if res.Answer != want {
		t.Errorf("Answer = %q, want %q", res.Answer, want)
	}
	if len(res.NextQuestions) == 0 {
		t.Error("expected follow-up suggestions for phcet_info")
	}
}

func TestMatchUnaffectedBySessionHistory(t *testing.T) {
	e, _, _ := newEngine(t)

	e.HandleQuery(context.Background(), "s1", "tell me about the campus")
	res := e.HandleQuery(context.Background(), "s1", "What is PHCET?")

	fresh := e.HandleQuery(context.Background(), "other", "What is PHCET?")
	if res.Answer != fresh.Answer {
		t.Errorf("history changed a matching query's answer: %q vs %q", res.Answer, fresh.Answer)
	}
}

func TestCarriedIntentEquivalence(t *testing.T) {
	e, _, _ := newEngine(t)
	ctx := context.Background()

	direct := e.HandleQuery(ctx, "a", "What is PHCET?")

	e.HandleQuery(ctx, "b", "What is PHCET?")
	carried := e.HandleQuery(ctx, "b", "how do i apply pls") // matches no trigger

	if carried.Answer != direct.Answer {
		t.Errorf("carried answer = %q, want direct answer %q", carried.Answer, direct.Answer)
	}
	if !reflect.DeepEqual(carried.NextQuestions, direct.NextQuestions) {
		t.Errorf("carried suggestions = %v, want %v", carried.NextQuestions, direct.NextQuestions)
	}
}

func TestResetBehavesLikeFreshSession(t *testing.T) {
	e, _, sink := newEngine(t)
	ctx := context.Background()

	e.HandleQuery(ctx, "s1", "What is PHCET?")
	e.Reset("s1")

	res := e.HandleQuery(ctx, "s1", "zzz no trigger zzz")
	freshRes := e.HandleQuery(ctx, "brand-new", "zzz no trigger zzz")

	if res.Answer != freshRes.Answer {
		t.Errorf("post-reset answer = %q, fresh-session answer = %q", res.Answer, freshRes.Answer)
	}
	if res.Answer != fallback.Apology {
		t.Errorf("Answer = %q, want apology (no carry-over after reset)", res.Answer)
	}
	if len(sink.recorded) != 2 {
		t.Errorf("misses recorded = %d, want 2", len(sink.recorded))
	}
}

func TestResetUnknownSession(t *testing.T) {
	e, sessions, _ := newEngine(t)

	e.Reset("never-seen")
	if got := sessions.GetOrCreate("never-seen").LastIntent; got != "" {
		t.Errorf("LastIntent = %q, want empty", got)
	}
}

func TestEmptyQueryShortCircuits(t *testing.T) {
	e, sessions, sink := newEngine(t)

	for _, q := range []string{"", "   ", "\n\t "} {
		res := e.HandleQuery(context.Background(), "s1", q)
		if res.Answer != EmptyQueryAnswer {
			t.Errorf("HandleQuery(%q) = %q, want %q", q, res.Answer, EmptyQueryAnswer)
		}
		if len(res.NextQuestions) != 0 {
			t.Errorf("HandleQuery(%q) suggestions = %v, want none", q, res.NextQuestions)
		}
	}

	if sessions.Len() != 0 {
		t.Errorf("session store has %d sessions, want 0 (no side effects)", sessions.Len())
	}
	if len(sink.recorded) != 0 {
		t.Errorf("miss log recorded %v, want nothing", sink.recorded)
	}
}

func TestNonsenseNoHistoryYieldsApologyAndOneMiss(t *testing.T) {
	e, _, sink := newEngine(t)

	res := e.HandleQuery(context.Background(), "s1", "asdkjasdj nonsense")
	if res.Answer != fallback.Apology {
		t.Errorf("Answer = %q, want apology", res.Answer)
	}
	if len(res.NextQuestions) != 0 {
		t.Errorf("suggestions = %v, want none", res.NextQuestions)
	}
	if len(sink.recorded) != 1 || sink.recorded[0] != "asdkjasdj nonsense" {
		t.Errorf("recorded = %v, want the original query once", sink.recorded)
	}
}

func TestFallbackFailureIsolation(t *testing.T) {
	catalog := intent.DefaultCatalog()
	sink := &recordingSink{}
	step := &failingStep{}
	e := New(
		intent.NewMatcher(catalog),
		resolver.New(testKB()),
		session.NewMemoryStore(),
		followup.NewTable(catalog),
		fallback.NewChain([]fallback.Step{step}, sink, zap.NewNop()),
		zap.NewNop(),
	)

	res := e.HandleQuery(context.Background(), "s1", "qwerty gibberish")
	if res.Answer != fallback.Apology {
		t.Errorf("Answer = %q, want apology after step failure", res.Answer)
	}
	if step.calls != 1 {
		t.Errorf("step calls = %d, want 1", step.calls)
	}
}

func TestCarriedIntentRetainedThroughFallback(t *testing.T) {
	// campus_info resolves; then an unresolvable carried turn must keep
	// campus_info as the effective intent for session update.
	e, sessions, _ := newEngine(t)
	ctx := context.Background()

	e.HandleQuery(ctx, "s1", "how is the hostel") // campus_info
	if got := sessions.GetOrCreate("s1").LastIntent; got != "campus_info" {
		t.Fatalf("LastIntent = %q, want campus_info", got)
	}

	// Next query matches contact_info but the KB only has an email, so
	// it still resolves; use an intent that cannot resolve instead:
	// phcasc_info with an empty PHCASC section returns no answer.
	res := e.HandleQuery(ctx, "s1", "tell me about the arts college")
	if res.Answer != fallback.Apology {
		t.Fatalf("Answer = %q, want apology (phcasc has no KB content)", res.Answer)
	}
	// The effective intent survives the fallback path.
	if got := sessions.GetOrCreate("s1").LastIntent; got != "phcasc_info" {
		t.Errorf("LastIntent = %q, want phcasc_info", got)
	}
	if len(res.NextQuestions) == 0 {
		t.Error("expected phcasc_info suggestions even on the fallback path")
	}
}

func TestSessionUpdatedWithEmptyIntentOnTotalMiss(t *testing.T) {
	e, sessions, _ := newEngine(t)
	ctx := context.Background()

	e.HandleQuery(ctx, "s1", "What is PHCET?")
	// Carried phcet_info still resolves here.
	e.HandleQuery(ctx, "s1", "zzz")
	e.Reset("s1")
	// No match and no carry: the effective intent is none.
	e.HandleQuery(ctx, "s1", "zzz")

	if got := sessions.GetOrCreate("s1").LastIntent; got != "" {
		t.Errorf("LastIntent = %q, want empty after a no-intent turn", got)
	}
}
