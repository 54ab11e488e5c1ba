package session

import (
	"time"

	"github.com/acmgallery/gallery/pkg/gallery"
)

// ViewState is what a visitor has selected on the gallery page.
type ViewState struct {
	// CarouselIndex is the last visible carousel page. It is clamped
	// against the current catalog when restored.
	CarouselIndex int `json:"carousel_index"`

	// ActiveFilter is the highlighted filter chip
	ActiveFilter gallery.Filter `json:"active_filter"`

	// UpdatedAt is when the visitor last changed anything
	UpdatedAt time.Time `json:"updated_at"`

	// Expires is when the state is dropped
	Expires time.Time `json:"expires"`
}

// NewViewState returns the state of a first visit: first page, "All" highlighted.
func NewViewState(ttl time.Duration) *ViewState {
	s := &ViewState{
		ActiveFilter: gallery.FilterAll,
	}
	s.Touch(ttl)
	return s
}

// Touch marks the state as updated now and extends its lifetime.
func (s *ViewState) Touch(ttl time.Duration) {
	now := time.Now()
	s.UpdatedAt = now
	s.Expires = now.Add(ttl)
}

// IsExpired returns true if the state has expired.
func (s *ViewState) IsExpired() bool {
	return time.Now().After(s.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (s *ViewState) TTL() time.Duration {
	ttl := time.Until(s.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}
