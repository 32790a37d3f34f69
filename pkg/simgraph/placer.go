package simgraph

import (
	"errors"
	"math"
	"math/rand"

	"github.com/mwold/netplague/pkg/logging"
	"github.com/mwold/netplague/pkg/metrics"
	"github.com/mwold/netplague/pkg/worldmap"
)

// DefaultMaxRetries bounds the resample loop for a single node before the
// placer falls back to a hub center. A pure loop counter, never a wait.
const DefaultMaxRetries = 8

// classDistribution is the fixed categorical distribution device classes are
// drawn from.
var classDistribution = []struct {
	class  DeviceClass
	weight float64
}{
	{DeviceSmartphone, 0.35},
	{DeviceComputer, 0.30},
	{DeviceIoT, 0.20},
	{DeviceServer, 0.15},
}

// focusAreas is a curated list of descriptive tags assigned for flavor text.
var focusAreas = []string{
	"municipal services",
	"hospital records",
	"retail payments",
	"logistics tracking",
	"home automation",
	"social platforms",
	"industrial control",
	"online banking",
	"campus networks",
	"media streaming",
}

// Placer generates device nodes biased toward population hubs, rejecting
// water placements against the land sampler.
type Placer struct {
	sampler    worldmap.Sampler
	hubs       []worldmap.HubRegion
	maxRetries int
	logger     logging.Logger
	metrics    *metrics.Registry
}

// PlacerOption configures a Placer.
type PlacerOption func(*Placer)

// WithMaxRetries overrides the per-node resample budget.
func WithMaxRetries(n int) PlacerOption {
	return func(p *Placer) {
		if n > 0 {
			p.maxRetries = n
		}
	}
}

// WithPlacerLogger sets the logger.
func WithPlacerLogger(l logging.Logger) PlacerOption {
	return func(p *Placer) { p.logger = l }
}

// WithPlacerMetrics sets the metrics registry.
func WithPlacerMetrics(m *metrics.Registry) PlacerOption {
	return func(p *Placer) { p.metrics = m }
}

// NewPlacer builds a placer over the given sampler and hub table.
func NewPlacer(sampler worldmap.Sampler, hubs []worldmap.HubRegion, opts ...PlacerOption) (*Placer, error) {
	if sampler == nil {
		return nil, worldmap.ErrSamplingUnavailable
	}
	if len(hubs) == 0 {
		return nil, newGraphError("NewPlacer", 0, 0, errors.New("no hubs supplied"))
	}

	p := &Placer{
		sampler:    sampler,
		hubs:       hubs,
		maxRetries: DefaultMaxRetries,
		logger:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// GenerateNodes places count nodes. Every returned coordinate passes the
// land sampler, or is an explicit hub-center fallback (Node.Fallback set).
// IDs are sequential from 1 and stable for the session.
func (p *Placer) GenerateNodes(rng *rand.Rand, count int) ([]Node, error) {
	if count <= 0 {
		return nil, newGraphError("GenerateNodes", 0, 0, ErrNoNodes)
	}

	timer := logging.StartTimer(p.logger, "node placement complete", logging.Component("placer"), logging.Count(count))

	nodes := make([]Node, 0, count)
	byClass := make(map[string]int)

	for i := 0; i < count; i++ {
		placed, err := p.placeOne(rng)
		if err != nil {
			timer.EndError(err)
			return nil, err
		}
		placed.node.ID = uint64(i + 1)
		placed.node.Class = p.drawClass(rng)
		placed.node.Mix = MixForClass(placed.node.Class)
		placed.node.FocusArea = focusAreas[rng.Intn(len(focusAreas))]

		if p.metrics != nil {
			p.metrics.RecordPlacement(placed.attempts, placed.retries, placed.node.Fallback)
		}
		byClass[placed.node.Class.String()]++
		nodes = append(nodes, placed.node)
	}

	if p.metrics != nil {
		p.metrics.RecordWorld(len(nodes), byClass)
	}
	timer.End()
	return nodes, nil
}

type placement struct {
	node     Node
	attempts int
	retries  int
}

// placeOne runs the bounded sample-and-retry loop for a single node. The
// result is either a sampled land coordinate or an explicit hub-center
// fallback; it never loops unbounded and never silently defaults.
func (p *Placer) placeOne(rng *rand.Rand) (placement, error) {
	hub := worldmap.ChooseHub(rng, p.hubs)
	result := placement{node: Node{Hub: hub.Name}}

	for attempt := 0; attempt < p.maxRetries; attempt++ {
		result.attempts++

		candidate := worldmap.Coord{
			Lon: rng.NormFloat64()*hub.LonSpread + hub.Lon,
			Lat: rng.NormFloat64()*hub.LatSpread + hub.Lat,
		}.Clamp()

		land, err := p.sampler.IsLand(candidate)
		if err != nil {
			if errors.Is(err, worldmap.ErrOutOfBounds) {
				result.retries++
				continue
			}
			return placement{}, newGraphError("GenerateNodes", 0, 0, err)
		}
		if land {
			result.node.Coord = candidate
			return result, nil
		}
		result.retries++
	}

	// Retry budget spent: fall back to the nearest known-land hub center.
	fallback, err := p.nearestLandHub(hub)
	if err != nil {
		return placement{}, err
	}
	result.node.Coord = fallback.Center()
	result.node.Hub = fallback.Name
	result.node.Fallback = true
	p.logger.Debug("placement fell back to hub center",
		logging.Component("placer"), logging.Hub(fallback.Name))
	return result, nil
}

// nearestLandHub finds the hub center closest to the origin hub that the
// sampler classifies as land.
func (p *Placer) nearestLandHub(origin worldmap.HubRegion) (worldmap.HubRegion, error) {
	best := worldmap.HubRegion{}
	bestDist := math.MaxFloat64
	found := false

	for _, h := range p.hubs {
		land, err := p.sampler.IsLand(h.Center())
		if err != nil || !land {
			continue
		}
		d := origin.Center().DistanceKm(h.Center())
		if d < bestDist {
			best, bestDist, found = h, d, true
		}
	}

	if !found {
		return worldmap.HubRegion{}, newGraphError("GenerateNodes", 0, 0, ErrPlacementExhausted)
	}
	return best, nil
}

// drawClass samples a device class from the fixed categorical distribution.
func (p *Placer) drawClass(rng *rand.Rand) DeviceClass {
	roll := rng.Float64()
	cumulative := 0.0
	for _, entry := range classDistribution {
		cumulative += entry.weight
		if roll <= cumulative {
			return entry.class
		}
	}
	return classDistribution[len(classDistribution)-1].class
}
