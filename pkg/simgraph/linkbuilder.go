package simgraph

import (
	"math"
	"sort"
	"time"

	"github.com/mwold/netplague/pkg/logging"
	"github.com/mwold/netplague/pkg/metrics"
)

// Default link construction parameters.
const (
	DefaultMaxDistanceKm = 1500.0
	DefaultTopK          = 3
	// approximate km per degree of latitude, used to size grid cells
	kmPerDegree = 111.0
)

// Builder constructs a sparse undirected connectivity graph from placed
// nodes. Candidate neighbors are ranked by a similarity score combining
// distance and connectivity-mix overlap.
type Builder struct {
	maxDistanceKm float64
	topK          int
	maxLinks      int // 0 means derive from node count
	logger        logging.Logger
	metrics       *metrics.Registry
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithMaxDistance overrides the maximum geographic link distance.
func WithMaxDistance(km float64) BuilderOption {
	return func(b *Builder) {
		if km > 0 {
			b.maxDistanceKm = km
		}
	}
}

// WithTopK overrides how many ranked neighbors each node connects to.
func WithTopK(k int) BuilderOption {
	return func(b *Builder) {
		if k > 0 {
			b.topK = k
		}
	}
}

// WithLinkCap sets the global link-count cap.
func WithLinkCap(n int) BuilderOption {
	return func(b *Builder) { b.maxLinks = n }
}

// WithBuilderLogger sets the logger.
func WithBuilderLogger(l logging.Logger) BuilderOption {
	return func(b *Builder) { b.logger = l }
}

// WithBuilderMetrics sets the metrics registry.
func WithBuilderMetrics(m *metrics.Registry) BuilderOption {
	return func(b *Builder) { b.metrics = m }
}

// NewBuilder creates a link builder with default parameters.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		maxDistanceKm: DefaultMaxDistanceKm,
		topK:          DefaultTopK,
		logger:        logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// candidate is a scored potential neighbor.
type candidate struct {
	id     uint64
	dist   float64
	score  float64
	shared LinkTypeSet
}

// BuildLinks connects each node to its top-K ranked neighbors within the
// distance cap. The result is undirected with no self-links and no duplicate
// pairs; connected components may exist independently and isolated nodes are
// allowed.
func (b *Builder) BuildLinks(nodes []Node) ([]Link, error) {
	if len(nodes) == 0 {
		return nil, newGraphError("BuildLinks", 0, 0, ErrNoNodes)
	}

	start := time.Now()

	linkCap := b.maxLinks
	if linkCap <= 0 {
		linkCap = len(nodes) * b.topK
	}

	grid := buildGrid(nodes, b.cellDeg())
	byID := make(map[uint64]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	links := make([]Link, 0, len(nodes)*b.topK/2)
	seen := make(map[[2]uint64]bool)
	degree := make(map[uint64]int, len(nodes))

	for _, node := range nodes {
		if len(links) >= linkCap {
			break
		}
		candidates := b.rankNeighbors(node, nodes, grid)
		taken := 0
		for _, c := range candidates {
			if taken >= b.topK || len(links) >= linkCap {
				break
			}
			link := b.makeLink(node, byID[c.id], c)
			if seen[link.key()] {
				continue
			}
			seen[link.key()] = true
			links = append(links, link)
			degree[link.A]++
			degree[link.B]++
			taken++
		}
	}

	isolated := 0
	byType := make(map[string]int)
	for _, n := range nodes {
		if degree[n.ID] == 0 {
			isolated++
		}
	}
	for _, l := range links {
		byType[l.Type.String()]++
	}

	if b.metrics != nil {
		b.metrics.RecordTopology(len(links), isolated, byType, time.Since(start))
	}
	b.logger.Info("connectivity graph built",
		logging.Component("linkbuilder"),
		logging.Int("links", len(links)),
		logging.Int("isolated", isolated))

	return links, nil
}

// cellDeg sizes spatial grid cells so any pair within the distance cap sits
// at most one cell apart in latitude. Longitude degrees shrink by cos(lat),
// so the x-scan in rankNeighbors widens accordingly.
func (b *Builder) cellDeg() float64 {
	return b.maxDistanceKm / kmPerDegree
}

// xSpan is how many grid cells to scan either side in longitude. A degree of
// longitude covers kmPerDegree*cos(lat) km, so the span grows toward the
// poles.
func xSpan(lat float64) int {
	c := math.Cos(lat * math.Pi / 180)
	if c < 1e-3 {
		c = 1e-3
	}
	span := int(math.Ceil(1 / c))
	if span < 1 {
		span = 1
	}
	return span
}

type gridKey struct {
	x, y int
}

// buildGrid indexes node positions into coarse lon/lat cells.
func buildGrid(nodes []Node, cellDeg float64) map[gridKey][]int {
	grid := make(map[gridKey][]int)
	for i, n := range nodes {
		k := gridKey{
			x: int(math.Floor(n.Coord.Lon / cellDeg)),
			y: int(math.Floor(n.Coord.Lat / cellDeg)),
		}
		grid[k] = append(grid[k], i)
	}
	return grid
}

// rankNeighbors scores every node within range of the given node and returns
// them best-first. Ties break on id to keep runs reproducible.
func (b *Builder) rankNeighbors(node Node, nodes []Node, grid map[gridKey][]int) []candidate {
	cellDeg := b.cellDeg()
	cx := int(math.Floor(node.Coord.Lon / cellDeg))
	cy := int(math.Floor(node.Coord.Lat / cellDeg))

	var candidates []candidate
	xs := xSpan(node.Coord.Lat)
	for dx := -xs; dx <= xs; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, idx := range grid[gridKey{x: cx + dx, y: cy + dy}] {
				other := nodes[idx]
				if other.ID == node.ID {
					continue
				}
				dist := node.Coord.DistanceKm(other.Coord)
				if dist > b.maxDistanceKm {
					continue
				}
				candidates = append(candidates, candidate{
					id:     other.ID,
					dist:   dist,
					score:  b.similarity(node, other, dist),
					shared: node.Mix.Intersect(other.Mix),
				})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].id < candidates[j].id
	})
	return candidates
}

// similarity combines proximity and connectivity-mix overlap. Distance
// dominates, shared link media break near-ties.
func (b *Builder) similarity(a, other Node, dist float64) float64 {
	proximity := 1.0 - dist/b.maxDistanceKm

	union := a.Mix | other.Mix
	overlap := 0.0
	if union.Count() > 0 {
		overlap = float64(a.Mix.Intersect(other.Mix).Count()) / float64(union.Count())
	}

	return 0.6*proximity + 0.4*overlap
}

// makeLink chooses the highest-priority link type present in both mixes,
// falling back to municipal Wi-Fi when the mixes don't overlap, and derives
// the transmission weight from medium and proximity.
func (b *Builder) makeLink(a, other Node, c candidate) Link {
	linkType, ok := c.shared.Best()
	if !ok {
		linkType = LinkMunicipalWiFi
	}
	weight := linkType.baseWeight() * (1.0 - 0.5*c.dist/b.maxDistanceKm)
	return NewLink(a.ID, other.ID, linkType, weight)
}
