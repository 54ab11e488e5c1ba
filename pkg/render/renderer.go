// Package render turns gallery view state into the HTML page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var (
	pageRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gallery_page_renders_total",
		Help: "Total gallery page renders by result",
	}, []string{"result"})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gallery_render_duration_seconds",
		Help:    "Gallery page render duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})
)

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page renders the full gallery page to w. Nothing is written if rendering fails.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	start := time.Now()
	defer func() {
		renderDuration.Observe(time.Since(start).Seconds())
	}()

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		pageRendersTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("execute page template: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		pageRendersTotal.WithLabelValues("write_error").Inc()
		return fmt.Errorf("write page: %w", err)
	}

	pageRendersTotal.WithLabelValues("ok").Inc()
	return nil
}
