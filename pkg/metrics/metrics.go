package metrics

import (
	"runtime"
	"time"
)

// RecordPlacement records the outcome of placing a single node
func (r *Registry) RecordPlacement(attempts, retries int, fallback bool) {
	r.PlacementAttemptsTotal.Add(float64(attempts))
	r.PlacementRetriesTotal.Add(float64(retries))
	if fallback {
		r.PlacementFallbacksTotal.Inc()
	}
}

// RecordWorld records the generated world's node and class counts
func (r *Registry) RecordWorld(totalNodes int, byClass map[string]int) {
	r.NodesPlaced.Set(float64(totalNodes))
	for class, count := range byClass {
		r.NodesByClass.WithLabelValues(class).Set(float64(count))
	}
}

// RecordTopology records the built connectivity graph
func (r *Registry) RecordTopology(totalLinks, isolated int, byType map[string]int, buildTime time.Duration) {
	r.LinksBuilt.Set(float64(totalLinks))
	r.IsolatedNodes.Set(float64(isolated))
	for linkType, count := range byType {
		r.LinksByType.WithLabelValues(linkType).Set(float64(count))
	}
	r.TopologyBuildMs.Observe(float64(buildTime.Milliseconds()))
}

// RecordTick records one simulation tick
func (r *Registry) RecordTick(newlyInfected, infected, secure int, integrity float64, duration time.Duration) {
	r.TicksTotal.Inc()
	r.InfectionsTotal.Add(float64(newlyInfected))
	r.InfectedNodes.Set(float64(infected))
	r.SecureNodes.Set(float64(secure))
	r.NetworkIntegrity.Set(integrity)
	r.TickDuration.Observe(duration.Seconds())
}

// UpdateSystemMetrics refreshes process-level gauges
func (r *Registry) UpdateSystemMetrics(startTime time.Time) {
	r.UptimeSeconds.Set(time.Since(startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}
