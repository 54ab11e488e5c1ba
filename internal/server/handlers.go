package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/acmgallery/gallery/pkg/gallery"
	"github.com/acmgallery/gallery/pkg/pagination"
	"github.com/acmgallery/gallery/pkg/render"
	"github.com/acmgallery/gallery/pkg/session"
)

// CarouselState is the JSON view of a visitor's carousel.
type CarouselState struct {
	CurrentIndex int              `json:"current_index"`
	PageCount    int              `json:"page_count"`
	HasControls  bool             `json:"has_controls"`
	ActiveFilter gallery.Filter   `json:"active_filter"`
	Pages        [][]gallery.Item `json:"pages"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (s *Server) readyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Session store not ready")
		http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := s.sessionKey(w, r)
	state := s.loadState(ctx, key)

	p := s.carousel(state)
	state.CarouselIndex = p.CurrentIndex()
	s.saveState(ctx, key, state)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.renderer.Page(w, render.NewPageData(s.catalog, p, state.ActiveFilter)); err != nil {
		s.logger.Error().Err(err).Str("session_id", key.SessionID).Msg("Page render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (s *Server) handleCarouselState(w http.ResponseWriter, r *http.Request) {
	key := s.sessionKey(w, r)
	state := s.loadState(r.Context(), key)
	s.writeState(w, s.carousel(state), state)
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.navigate(w, r, func(p *pagination.Paginator[gallery.Item]) error {
		p.Next()
		return nil
	})
}

func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	s.navigate(w, r, func(p *pagination.Paginator[gallery.Item]) error {
		p.Previous()
		return nil
	})
}

func (s *Server) handleGoTo(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "page index must be an integer", http.StatusBadRequest)
		return
	}

	s.navigate(w, r, func(p *pagination.Paginator[gallery.Item]) error {
		return p.GoTo(index)
	})
}

// navigate applies move to the visitor's carousel and stores the result.
// A rejected move leaves the state as it was; the page is shown again
// without an error, since the controls that send it are only rendered for
// valid targets.
func (s *Server) navigate(w http.ResponseWriter, r *http.Request, move func(*pagination.Paginator[gallery.Item]) error) {
	ctx := r.Context()
	key := s.sessionKey(w, r)
	state := s.loadState(ctx, key)
	p := s.carousel(state)

	if err := move(p); err != nil {
		if !errors.Is(err, pagination.ErrIndexOutOfRange) && !errors.Is(err, pagination.ErrEmptyInput) {
			s.logger.Error().Err(err).Str("session_id", key.SessionID).Msg("Carousel navigation failed")
			http.Error(w, "navigation failed", http.StatusInternalServerError)
			return
		}
		s.logger.Info().
			Err(err).
			Str("session_id", key.SessionID).
			Int("index", p.CurrentIndex()).
			Int("page_count", p.PageCount()).
			Msg("Carousel navigation rejected")
	}

	state.CarouselIndex = p.CurrentIndex()
	s.saveState(ctx, key, state)

	s.respond(w, r, p, state)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	filter, err := gallery.ParseFilter(r.PathValue("name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.setFilter(w, r, filter)
}

func (s *Server) handleClearFilter(w http.ResponseWriter, r *http.Request) {
	s.setFilter(w, r, gallery.FilterAll)
}

// setFilter changes which filter chip is highlighted. The carousel items
// are not filtered.
func (s *Server) setFilter(w http.ResponseWriter, r *http.Request, filter gallery.Filter) {
	ctx := r.Context()
	key := s.sessionKey(w, r)
	state := s.loadState(ctx, key)

	state.ActiveFilter = filter
	p := s.carousel(state)
	state.CarouselIndex = p.CurrentIndex()
	s.saveState(ctx, key, state)

	s.logger.Debug().
		Str("session_id", key.SessionID).
		Str("filter", string(filter)).
		Msg("Filter highlighted")

	s.respond(w, r, p, state)
}

// respond sends JSON to API clients and redirects browsers back to the page.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, p *pagination.Paginator[gallery.Item], state *session.ViewState) {
	if wantsJSON(r) {
		s.writeState(w, p, state)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) writeState(w http.ResponseWriter, p *pagination.Paginator[gallery.Item], state *session.ViewState) {
	resp := CarouselState{
		CurrentIndex: p.CurrentIndex(),
		PageCount:    p.PageCount(),
		HasControls:  p.HasControls(),
		ActiveFilter: state.ActiveFilter,
		Pages:        p.Pages(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to write carousel state")
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
