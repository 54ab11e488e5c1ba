package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StateHits tracks successful state loads by store
	StateHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_session_hits_total",
			Help: "Total number of session state loads that found state",
		},
		[]string{"store"}, // "redis", "memory"
	)

	// StateMisses tracks loads that found no live state
	StateMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_session_misses_total",
			Help: "Total number of session state loads without state",
		},
		[]string{"store"},
	)

	// StoreErrors tracks store operation errors
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_session_errors_total",
			Help: "Total number of session store operation errors",
		},
		[]string{"store", "operation"}, // "load", "save", "delete", "ping"
	)
)
