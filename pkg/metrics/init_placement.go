package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPlacementMetrics() {
	r.PlacementAttemptsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netplague_placement_attempts_total",
			Help: "Total number of candidate coordinates sampled during node placement",
		},
	)

	r.PlacementRetriesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netplague_placement_retries_total",
			Help: "Total number of candidates rejected as water and resampled",
		},
	)

	r.PlacementFallbacksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netplague_placement_fallbacks_total",
			Help: "Total number of nodes placed at a hub center after exhausting retries",
		},
	)

	r.NodesPlaced = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netplague_nodes_placed",
			Help: "Number of nodes in the generated world",
		},
	)

	r.NodesByClass = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netplague_nodes_by_class",
			Help: "Number of nodes per device class",
		},
		[]string{"class"},
	)
}
