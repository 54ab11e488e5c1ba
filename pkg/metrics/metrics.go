// Package metrics exposes the Prometheus registry used by the gallery.
// Collectors are declared next to the code they measure (pagination,
// session, render, server) and registered through promauto.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the registerer all gallery collectors use.
var Registry = prometheus.DefaultRegisterer

// Handler serves the default gatherer in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Metrics
//
// Carousel (pkg/pagination):
//   - gallery_carousel_navigations_total{action} (Counter): index changes by action
//   - gallery_carousel_rejections_total{reason} (Counter): navigations that changed nothing
//
// Session (pkg/session):
//   - gallery_session_hits_total{store} (Counter)
//   - gallery_session_misses_total{store} (Counter)
//   - gallery_session_errors_total{store, operation} (Counter)
//
// Rendering (pkg/render):
//   - gallery_page_renders_total{result} (Counter)
//   - gallery_render_duration_seconds (Histogram)
//
// HTTP (internal/server):
//   - gallery_http_requests_total{route, status} (Counter)
//   - gallery_http_request_duration_seconds{route} (Histogram)
//
// Example queries:
//
//   # Share of goto clicks that were rejected
//   rate(gallery_carousel_rejections_total{reason="out_of_range"}[5m])
//     / rate(gallery_carousel_navigations_total{action="goto"}[5m])
//
//   # Session state hit rate
//   sum(rate(gallery_session_hits_total[5m])) /
//   (sum(rate(gallery_session_hits_total[5m])) + sum(rate(gallery_session_misses_total[5m])))
