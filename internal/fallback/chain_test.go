package fallback

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pillaihoc/phoccy/internal/llm"
)

type fakeStep struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeStep) Name() string { return f.name }

func (f *fakeStep) Attempt(ctx context.Context, query string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeSink struct {
	recorded []string
}

func (f *fakeSink) Record(ctx context.Context, query string) {
	f.recorded = append(f.recorded, query)
}

func TestFirstStepWins(t *testing.T) {
	first := &fakeStep{name: "local", text: "generated answer"}
	second := &fakeStep{name: "hosted", text: "should not be used"}
	sink := &fakeSink{}

	c := NewChain([]Step{first, second}, sink, zap.NewNop())
	got := c.Answer(context.Background(), "anything")

	if got != "generated answer" {
		t.Errorf("Answer = %q", got)
	}
	if second.calls != 0 {
		t.Errorf("second step called %d times, want 0", second.calls)
	}
	if len(sink.recorded) != 0 {
		t.Errorf("miss recorded for a successful turn: %v", sink.recorded)
	}
}

func TestFailureAdvancesChain(t *testing.T) {
	first := &fakeStep{name: "local", err: errors.New("connection refused")}
	second := &fakeStep{name: "hosted", text: "hosted answer"}

	c := NewChain([]Step{first, second}, &fakeSink{}, zap.NewNop())
	if got := c.Answer(context.Background(), "q"); got != "hosted answer" {
		t.Errorf("Answer = %q", got)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", first.calls, second.calls)
	}
}

func TestEmptyTextAdvancesChain(t *testing.T) {
	first := &fakeStep{name: "local", text: "   \n"}
	second := &fakeStep{name: "hosted", text: "real answer"}

	c := NewChain([]Step{first, second}, &fakeSink{}, zap.NewNop())
	if got := c.Answer(context.Background(), "q"); got != "real answer" {
		t.Errorf("Answer = %q", got)
	}
}

func TestAllStepsFailYieldsApologyAndRecordsMiss(t *testing.T) {
	first := &fakeStep{name: "local", err: errors.New("down")}
	second := &fakeStep{name: "hosted", err: errors.New("also down")}
	sink := &fakeSink{}

	c := NewChain([]Step{first, second}, sink, zap.NewNop())
	if got := c.Answer(context.Background(), "what about lunch"); got != Apology {
		t.Errorf("Answer = %q, want apology", got)
	}
	if len(sink.recorded) != 1 || sink.recorded[0] != "what about lunch" {
		t.Errorf("recorded = %v, want the original query once", sink.recorded)
	}
}

func TestNoStepsConfigured(t *testing.T) {
	sink := &fakeSink{}
	c := NewChain(nil, sink, zap.NewNop())

	if got := c.Answer(context.Background(), "q"); got != Apology {
		t.Errorf("Answer = %q, want apology", got)
	}
	if len(sink.recorded) != 1 {
		t.Errorf("expected one miss recorded, got %d", len(sink.recorded))
	}
}

func TestNilSink(t *testing.T) {
	c := NewChain(nil, nil, zap.NewNop())
	if got := c.Answer(context.Background(), "q"); got != Apology {
		t.Errorf("Answer = %q, want apology", got)
	}
}

type slowProvider struct{}

func (slowProvider) Name() string { return "slow" }

func (slowProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Second):
		return &llm.CompletionResponse{Content: "too late"}, nil
	}
}

func TestProviderStepTimeout(t *testing.T) {
	step := NewProviderStep("slow", slowProvider{}, "m", 64, 50*time.Millisecond)

	start := time.Now()
	_, err := step.Attempt(context.Background(), "q")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Attempt took %v, timeout not enforced", elapsed)
	}
}

type echoProvider struct {
	gotModel  string
	gotTokens int
}

func (e *echoProvider) Name() string { return "echo" }

func (e *echoProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	e.gotModel = req.Model
	e.gotTokens = req.MaxTokens
	var user string
	for _, m := range req.Messages {
		if m.Role == llm.RoleUser {
			user = m.Content
		}
	}
	return &llm.CompletionResponse{Content: "echo: " + user}, nil
}

func TestProviderStepBuildsRequest(t *testing.T) {
	p := &echoProvider{}
	step := NewProviderStep("echo", p, "llama3", 128, time.Second)

	got, err := step.Attempt(context.Background(), "where is the hostel")
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if got != "echo: where is the hostel" {
		t.Errorf("Attempt = %q", got)
	}
	if p.gotModel != "llama3" || p.gotTokens != 128 {
		t.Errorf("model/tokens = %q/%d", p.gotModel, p.gotTokens)
	}
}
