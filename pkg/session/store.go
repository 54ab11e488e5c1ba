package session

import (
	"context"
	"errors"
)

var (
	// ErrStateMiss indicates no live state exists for the key
	ErrStateMiss = errors.New("session state miss")

	// ErrInvalidState indicates the stored state is corrupted
	ErrInvalidState = errors.New("invalid session state")
)

// Store persists view state between requests.
type Store interface {
	// Load returns the state for key, or ErrStateMiss if absent or expired.
	Load(ctx context.Context, key Key) (*ViewState, error)

	// Save stores state until state.Expires. Already expired state is not stored.
	Save(ctx context.Context, key Key, state *ViewState) error

	// Delete removes the state for key.
	Delete(ctx context.Context, key Key) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
