package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Navigations tracks accepted index changes by action (next, previous, goto, clamp)
	Navigations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_carousel_navigations_total",
			Help: "Total number of carousel page index changes",
		},
		[]string{"action"},
	)

	// Rejections tracks navigation requests that left the state unchanged
	Rejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_carousel_rejections_total",
			Help: "Total number of rejected carousel navigations",
		},
		[]string{"reason"}, // "empty", "out_of_range"
	)
)
