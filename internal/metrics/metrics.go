package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RouteDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menyqr_route_decisions_total",
			Help: "Route guard outcomes by classification",
		},
		[]string{"classification", "action"},
	)

	GateDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menyqr_gate_decisions_total",
			Help: "Feature gate outcomes (full or upsell) per feature",
		},
		[]string{"feature", "outcome"},
	)

	ProfileCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menyqr_profile_cache_total",
			Help: "Profile cache lookups by result",
		},
		[]string{"result"},
	)

	TierTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menyqr_tier_transitions_total",
			Help: "Tier changes applied from billing events",
		},
		[]string{"tier"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menyqr_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
