package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	s := NewMemoryStore()

	first := s.GetOrCreate("sess-1")
	if first.LastIntent != "" {
		t.Errorf("fresh session LastIntent = %q, want empty", first.LastIntent)
	}

	again := s.GetOrCreate("sess-1")
	if again != first {
		t.Errorf("repeated GetOrCreate = %+v, want %+v", again, first)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestUpdateAndReset(t *testing.T) {
	s := NewMemoryStore()

	s.Update("sess-1", "phcet_info")
	if got := s.GetOrCreate("sess-1").LastIntent; got != "phcet_info" {
		t.Errorf("LastIntent = %q, want phcet_info", got)
	}

	s.Reset("sess-1")
	if got := s.GetOrCreate("sess-1").LastIntent; got != "" {
		t.Errorf("LastIntent after reset = %q, want empty", got)
	}
}

func TestResetUnknownSession(t *testing.T) {
	s := NewMemoryStore()
	s.Reset("never-seen")

	ctx := s.GetOrCreate("never-seen")
	if ctx.LastIntent != "" {
		t.Errorf("LastIntent = %q, want empty", ctx.LastIntent)
	}
}

func TestUpdateClearsWithEmptyIntent(t *testing.T) {
	s := NewMemoryStore()
	s.Update("sess-1", "campus_info")
	s.Update("sess-1", "")
	if got := s.GetOrCreate("sess-1").LastIntent; got != "" {
		t.Errorf("LastIntent = %q, want cleared", got)
	}
}

func TestNoCrossSessionLeakage(t *testing.T) {
	s := NewMemoryStore()
	s.Update("a", "phcet_info")
	s.Update("b", "campus_info")

	if got := s.GetOrCreate("a").LastIntent; got != "phcet_info" {
		t.Errorf("session a LastIntent = %q", got)
	}
	if got := s.GetOrCreate("b").LastIntent; got != "campus_info" {
		t.Errorf("session b LastIntent = %q", got)
	}
	if got := s.GetOrCreate("c").LastIntent; got != "" {
		t.Errorf("session c LastIntent = %q, want empty", got)
	}
}

func TestConcurrentDistinctSessions(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("sess-%d", i)
			intent := fmt.Sprintf("intent-%d", i)
			s.GetOrCreate(id)
			s.Update(id, intent)
			if got := s.GetOrCreate(id).LastIntent; got != intent {
				t.Errorf("session %s LastIntent = %q, want %q", id, got, intent)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("Len = %d, want 50", s.Len())
	}
}
