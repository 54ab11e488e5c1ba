package session

import (
	"context"
	"fmt"
	"sync"
)

const storeMemory = "memory"

// MemoryStore keeps view state in process memory. Expired entries are
// dropped lazily on Load and by Sweep.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]ViewState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string]ViewState),
	}
}

// Load returns a copy of the stored state.
func (s *MemoryStore) Load(_ context.Context, key Key) (*ViewState, error) {
	k := key.String()

	s.mu.RLock()
	state, ok := s.states[k]
	s.mu.RUnlock()

	if !ok {
		StateMisses.WithLabelValues(storeMemory).Inc()
		return nil, ErrStateMiss
	}
	if state.IsExpired() {
		s.mu.Lock()
		delete(s.states, k)
		s.mu.Unlock()
		StateMisses.WithLabelValues(storeMemory).Inc()
		return nil, ErrStateMiss
	}

	StateHits.WithLabelValues(storeMemory).Inc()
	return &state, nil
}

// Save stores a copy of state.
func (s *MemoryStore) Save(_ context.Context, key Key, state *ViewState) error {
	if state == nil {
		return fmt.Errorf("view state cannot be nil")
	}
	if state.TTL() <= 0 {
		return nil
	}

	s.mu.Lock()
	s.states[key.String()] = *state
	s.mu.Unlock()
	return nil
}

// Delete removes the state for key.
func (s *MemoryStore) Delete(_ context.Context, key Key) error {
	s.mu.Lock()
	delete(s.states, key.String())
	s.mu.Unlock()
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Sweep drops expired states and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, state := range s.states {
		if state.IsExpired() {
			delete(s.states, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored states, including expired ones not yet swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
