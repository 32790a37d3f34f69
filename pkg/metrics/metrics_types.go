package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the simulation
type Registry struct {
	// Placement Metrics
	PlacementAttemptsTotal  prometheus.Counter
	PlacementRetriesTotal   prometheus.Counter
	PlacementFallbacksTotal prometheus.Counter
	NodesPlaced             prometheus.Gauge
	NodesByClass            *prometheus.GaugeVec

	// Topology Metrics
	LinksBuilt      prometheus.Gauge
	LinksByType     *prometheus.GaugeVec
	IsolatedNodes   prometheus.Gauge
	TopologyBuildMs prometheus.Histogram

	// Outbreak Metrics
	TicksTotal       prometheus.Counter
	InfectionsTotal  prometheus.Counter
	InfectedNodes    prometheus.Gauge
	SecureNodes      prometheus.Gauge
	NetworkIntegrity prometheus.Gauge
	TickDuration     prometheus.Histogram

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	// Initialize all metrics
	r.initPlacementMetrics()
	r.initTopologyMetrics()
	r.initOutbreakMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
