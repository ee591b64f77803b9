// Package session keeps per-session conversational context so that
// follow-up queries with no trigger reuse the previous topic.
package session

import "sync"

// Context is the per-session record. LastIntent is empty when the
// session has no carried topic.
type Context struct {
	SessionID  string
	LastIntent string
}

// Store is the context-store abstraction injected into the orchestrator.
// Implementations must be safe for concurrent use across distinct
// session ids; within one session last-writer-wins is acceptable.
type Store interface {
	// GetOrCreate returns the context for the session, creating an
	// empty one on first sight. Idempotent until the next Update.
	GetOrCreate(sessionID string) Context
	// Update sets the session's last intent, creating the session if
	// needed. An empty intent name clears the carried topic.
	Update(sessionID, intentName string)
	// Reset clears the session's carried topic regardless of prior
	// state. Resetting an unknown session creates a fresh one.
	Reset(sessionID string)
}

// MemoryStore is the in-process Store. State lives for the process
// lifetime only.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Context
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Context)}
}

func (s *MemoryStore) GetOrCreate(sessionID string) Context {
	s.mu.RLock()
	ctx, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return ctx
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx, ok := s.sessions[sessionID]; ok {
		return ctx
	}
	ctx = Context{SessionID: sessionID}
	s.sessions[sessionID] = ctx
	return ctx
}

func (s *MemoryStore) Update(sessionID, intentName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = Context{SessionID: sessionID, LastIntent: intentName}
}

func (s *MemoryStore) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = Context{SessionID: sessionID}
}

// Len returns the number of known sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
