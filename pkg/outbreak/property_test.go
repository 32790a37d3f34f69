package outbreak

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mwold/netplague/pkg/simgraph"
	"github.com/mwold/netplague/pkg/worldmap"
)

// ringGraph builds a cycle of n computers with uniform link weight.
func ringGraph(n int, weight float64) (*simgraph.Graph, error) {
	nodes := make([]simgraph.Node, 0, n)
	links := make([]simgraph.Link, 0, n)
	for i := 1; i <= n; i++ {
		nodes = append(nodes, simgraph.Node{
			ID:    uint64(i),
			Coord: worldmap.Coord{Lon: float64(i), Lat: 0},
			Class: simgraph.DeviceComputer,
			Mix:   simgraph.MixForClass(simgraph.DeviceComputer),
		})
		next := uint64(i%n + 1)
		if uint64(i) != next {
			links = append(links, simgraph.NewLink(uint64(i), next, simgraph.LinkFiber, weight))
		}
	}
	return simgraph.NewGraph(nodes, links)
}

// TestOutbreakInvariants checks run properties that must hold for any
// seed, size, and transmission rate.
func TestOutbreakInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	sizeGen := gen.IntRange(3, 40)
	seedGen := gen.Int64()
	rateGen := gen.Float64Range(0, 0.9)

	// Property 1: infection counts never decrease and never exceed the
	// node count.
	properties.Property("infections are monotone and bounded", prop.ForAll(
		func(n int, seed int64, rate float64) bool {
			g, err := ringGraph(n, 0.7)
			if err != nil {
				return false
			}
			e, err := NewEngine(g, ProbabilisticRule{BaseRate: rate},
				WithRNG(rand.New(rand.NewSource(seed))))
			if err != nil {
				return false
			}
			if _, err := e.SeedRandom(); err != nil {
				return false
			}
			prev := e.InfectedCount()
			for i := 0; i < 30; i++ {
				if _, err := e.Tick(); err != nil {
					return false
				}
				cur := e.InfectedCount()
				if cur < prev || cur > n {
					return false
				}
				prev = cur
			}
			return true
		},
		sizeGen, seedGen, rateGen,
	))

	// Property 2: a stable result means a further tick infects nothing.
	properties.Property("stable worlds stay stable", prop.ForAll(
		func(n int, seed int64) bool {
			g, err := ringGraph(n, 0.7)
			if err != nil {
				return false
			}
			e, err := NewEngine(g, DeterministicRule{Threshold: 0},
				WithRNG(rand.New(rand.NewSource(seed))))
			if err != nil {
				return false
			}
			if _, err := e.SeedRandom(); err != nil {
				return false
			}
			for i := 0; i < 2*n; i++ {
				res, err := e.Tick()
				if err != nil {
					return false
				}
				if res.Stable {
					again, err := e.Tick()
					return err == nil && again.NewlyInfected == 0 && again.Stable
				}
			}
			return false
		},
		sizeGen, seedGen,
	))

	// Property 3: integrity always matches the secure share.
	properties.Property("integrity equals secure percentage", prop.ForAll(
		func(n int, seed int64, rate float64) bool {
			g, err := ringGraph(n, 0.7)
			if err != nil {
				return false
			}
			e, err := NewEngine(g, ProbabilisticRule{BaseRate: rate},
				WithRNG(rand.New(rand.NewSource(seed))))
			if err != nil {
				return false
			}
			if _, err := e.SeedRandom(); err != nil {
				return false
			}
			for i := 0; i < 10; i++ {
				if _, err := e.Tick(); err != nil {
					return false
				}
			}
			integrity, err := e.Integrity()
			if err != nil {
				return false
			}
			want := 100 * float64(e.SecureCount()) / float64(n)
			diff := integrity - want
			return diff < 1e-9 && diff > -1e-9
		},
		sizeGen, seedGen, rateGen,
	))

	properties.TestingRun(t)
}
