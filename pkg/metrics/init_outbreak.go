package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initOutbreakMetrics() {
	r.TicksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netplague_ticks_total",
			Help: "Total number of simulation ticks advanced",
		},
	)

	r.InfectionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netplague_infections_total",
			Help: "Total number of secure to infected transitions",
		},
	)

	r.InfectedNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netplague_infected_nodes",
			Help: "Number of currently infected nodes",
		},
	)

	r.SecureNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netplague_secure_nodes",
			Help: "Number of currently secure nodes",
		},
	)

	r.NetworkIntegrity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netplague_network_integrity_percent",
			Help: "Percentage of nodes currently secure",
		},
	)

	r.TickDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netplague_tick_duration_seconds",
			Help:    "Tick duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
	)
}
