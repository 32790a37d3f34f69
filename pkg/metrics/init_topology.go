package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTopologyMetrics() {
	r.LinksBuilt = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netplague_links_built",
			Help: "Number of links in the connectivity graph",
		},
	)

	r.LinksByType = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netplague_links_by_type",
			Help: "Number of links per link type",
		},
		[]string{"type"},
	)

	r.IsolatedNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netplague_isolated_nodes",
			Help: "Number of nodes with no incident links",
		},
	)

	r.TopologyBuildMs = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netplague_topology_build_duration_ms",
			Help:    "Link construction duration in milliseconds",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
		},
	)
}
