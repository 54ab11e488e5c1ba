package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/acmgallery/gallery/pkg/session"
	"github.com/google/uuid"
)

// SessionCookie carries the visitor's session ID.
const SessionCookie = "gallery_session"

// sessionKey returns the visitor's session key, issuing a new cookie when
// the request has none or an unparseable one.
func (s *Server) sessionKey(w http.ResponseWriter, r *http.Request) session.Key {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return session.Key{SessionID: id.String()}
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session.Key{SessionID: id}
}

// loadState returns the stored view state, or a fresh one when there is
// none or the store fails.
func (s *Server) loadState(ctx context.Context, key session.Key) *session.ViewState {
	state, err := s.store.Load(ctx, key)
	if err == nil {
		return state
	}
	if !errors.Is(err, session.ErrStateMiss) {
		s.logger.Warn().
			Err(err).
			Str("session_id", key.SessionID).
			Msg("Session load failed, using fresh state")
	}
	return session.NewViewState(s.ttl)
}

// saveState extends the state's lifetime and stores it. Failures are
// logged; the visitor only loses their position.
func (s *Server) saveState(ctx context.Context, key session.Key, state *session.ViewState) {
	state.Touch(s.ttl)
	if err := s.store.Save(ctx, key, state); err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", key.SessionID).
			Msg("Session save failed")
	}
}
