package outbreak

import (
	"math/rand"

	"github.com/mwold/netplague/pkg/simgraph"
)

// Rule decides whether the infection crosses a single link during a tick.
type Rule interface {
	Transmits(link simgraph.Link, src, dst simgraph.Node, rng *rand.Rand) bool
}

// DeterministicRule transmits over every link whose weight meets the
// threshold. Useful for reproducible tests and worst-case analysis.
type DeterministicRule struct {
	Threshold float64
}

// Transmits reports whether the link weight clears the threshold.
func (r DeterministicRule) Transmits(link simgraph.Link, _, _ simgraph.Node, _ *rand.Rand) bool {
	return link.Weight >= r.Threshold
}

// Probability caps for the probabilistic rule.
const (
	DefaultBaseRate = 0.05
	maxTransmitProb = 0.95

	sameClassBonus  = 0.12
	sameWeightBonus = 0.05
	weightFactor    = 0.5
)

// ProbabilisticRule rolls per link. The transmission chance grows with
// the link weight and with how similar the endpoint devices are: same
// device class adds the most, matching weight class (both lightweight or
// both heavyweight) adds a smaller bump.
type ProbabilisticRule struct {
	BaseRate float64
}

// Transmits rolls against the computed probability for this link.
func (r ProbabilisticRule) Transmits(link simgraph.Link, src, dst simgraph.Node, rng *rand.Rand) bool {
	return rng.Float64() < r.probability(link, src, dst)
}

func (r ProbabilisticRule) probability(link simgraph.Link, src, dst simgraph.Node) float64 {
	base := r.BaseRate
	if base <= 0 {
		base = DefaultBaseRate
	}
	p := base + weightFactor*link.Weight
	if src.Class == dst.Class {
		p += sameClassBonus
	} else if src.Class.Lightweight() == dst.Class.Lightweight() {
		p += sameWeightBonus
	}
	if p > maxTransmitProb {
		p = maxTransmitProb
	}
	return p
}
