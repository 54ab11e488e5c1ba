// Package server serves the gallery page and its carousel navigation.
//
// Every visitor owns one carousel. Its position lives in a session.Store
// between requests; each request rebuilds a paginator from the catalog,
// restores the stored index (clamped to the current page count), applies
// the navigation and stores the result.
package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/acmgallery/gallery/pkg/gallery"
	"github.com/acmgallery/gallery/pkg/metrics"
	"github.com/acmgallery/gallery/pkg/pagination"
	"github.com/acmgallery/gallery/pkg/render"
	"github.com/acmgallery/gallery/pkg/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures a Server.
type Options struct {
	// Catalog holds the photos to show (required)
	Catalog *gallery.Catalog

	// PageSize is the number of carousel cards per page
	PageSize int

	// Store keeps visitor state (required)
	Store session.Store

	// SessionTTL is the idle lifetime of visitor state
	SessionTTL time.Duration
}

// Server is the gallery HTTP server.
type Server struct {
	catalog  *gallery.Catalog
	pageSize int
	store    session.Store
	ttl      time.Duration
	renderer *render.Renderer
	logger   zerolog.Logger
}

// New validates opts and creates a server.
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if opts.PageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive (got %d): %w", opts.PageSize, pagination.ErrInvalidPageSize)
	}
	if opts.SessionTTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive (got %s)", opts.SessionTTL)
	}

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	return &Server{
		catalog:  opts.Catalog,
		pageSize: opts.PageSize,
		store:    opts.Store,
		ttl:      opts.SessionTTL,
		renderer: renderer,
		logger:   log.With().Str("component", "server").Logger(),
	}, nil
}

// Handler returns the routed handler with request logging and metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/carousel", s.handleCarouselState)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		mux.HandleFunc(method+" /carousel/next", s.handleNext)
		mux.HandleFunc(method+" /carousel/prev", s.handlePrevious)
		mux.HandleFunc(method+" /carousel/goto/{index}", s.handleGoTo)
		mux.HandleFunc(method+" /filter/clear", s.handleClearFilter)
		mux.HandleFunc(method+" /filter/{name}", s.handleFilter)
	}

	mux.HandleFunc("GET /health", healthHandler)
	mux.HandleFunc("GET /ready", s.readyHandler)
	mux.Handle("GET /metrics", metrics.Handler())

	return s.instrument(mux)
}

// carousel builds the visitor's paginator from the catalog and restores
// the stored position.
func (s *Server) carousel(state *session.ViewState) *pagination.Paginator[gallery.Item] {
	// pageSize was validated in New
	p, _ := pagination.New(s.catalog.Carousel, s.pageSize)
	p.Restore(state.CarouselIndex)
	return p
}

// RenderSnapshot writes the page for a given carousel index and filter
// without a session, for static export.
// Index 0 is accepted for an empty carousel.
func RenderSnapshot(w io.Writer, catalog *gallery.Catalog, pageSize, index int, filter gallery.Filter) error {
	p, err := pagination.New(catalog.Carousel, pageSize)
	if err != nil {
		return err
	}
	if index != 0 || p.PageCount() > 0 {
		if err := p.GoTo(index); err != nil {
			return err
		}
	}

	r, err := render.New()
	if err != nil {
		return err
	}
	return r.Page(w, render.NewPageData(catalog, p, filter))
}
