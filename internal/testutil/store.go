// Package testutil provides testing utilities for the gallery.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/acmgallery/gallery/pkg/session"
)

// ErrStoreDown is returned by every FailingStore operation.
var ErrStoreDown = errors.New("session store down")

// FailingStore is a session.Store whose backend is unreachable.
// It counts calls so tests can assert the server still tried.
type FailingStore struct {
	mu sync.Mutex

	LoadCount int
	SaveCount int
	PingCount int
}

// Load always fails.
func (s *FailingStore) Load(context.Context, session.Key) (*session.ViewState, error) {
	s.mu.Lock()
	s.LoadCount++
	s.mu.Unlock()
	return nil, ErrStoreDown
}

// Save always fails.
func (s *FailingStore) Save(context.Context, session.Key, *session.ViewState) error {
	s.mu.Lock()
	s.SaveCount++
	s.mu.Unlock()
	return ErrStoreDown
}

// Delete always fails.
func (s *FailingStore) Delete(context.Context, session.Key) error {
	return ErrStoreDown
}

// Ping always fails.
func (s *FailingStore) Ping(context.Context) error {
	s.mu.Lock()
	s.PingCount++
	s.mu.Unlock()
	return ErrStoreDown
}

// Calls returns the number of Load, Save and Ping calls so far.
func (s *FailingStore) Calls() (load, save, ping int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LoadCount, s.SaveCount, s.PingCount
}
