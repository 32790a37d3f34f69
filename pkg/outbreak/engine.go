package outbreak

import (
	"math/rand"
	"time"

	"github.com/mwold/netplague/pkg/logging"
	"github.com/mwold/netplague/pkg/metrics"
	"github.com/mwold/netplague/pkg/simgraph"
)

// DefaultMaxInfectionAttempts bounds how many links a single infected
// node probes per tick.
const DefaultMaxInfectionAttempts = 4

// TickResult summarizes one simulation step.
type TickResult struct {
	Tick          uint64
	NewlyInfected int
	Stable        bool // no secure node remains adjacent to an infected one
}

// Engine owns the infection state of a run and advances it one tick at
// a time. The topology is fixed at construction; only node states change.
type Engine struct {
	graph       *simgraph.Graph
	rule        Rule
	rng         *rand.Rand
	logger      logging.Logger
	metrics     *metrics.Registry
	recorder    *Recorder
	maxAttempts int
	unlocks     map[string]bool

	state  *WorldState
	seeded bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRNG sets the random source used for probabilistic rules and
// random seeding. Pass a seeded source for reproducible runs.
func WithRNG(rng *rand.Rand) EngineOption {
	return func(e *Engine) { e.rng = rng }
}

// WithMaxInfectionAttempts caps per-node link probes per tick.
func WithMaxInfectionAttempts(n int) EngineOption {
	return func(e *Engine) { e.maxAttempts = n }
}

// WithEngineLogger sets the structured logger.
func WithEngineLogger(logger logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithEngineMetrics sets the metrics registry.
func WithEngineMetrics(m *metrics.Registry) EngineOption {
	return func(e *Engine) { e.metrics = m }
}

// WithRecorder attaches a frame recorder; the engine captures a frame
// after seeding and after every tick.
func WithRecorder(r *Recorder) EngineOption {
	return func(e *Engine) { e.recorder = r }
}

// WithUnlockFlags carries named scenario flags into the run. The engine
// only stores them; rules and drivers read them via UnlockFlag.
func WithUnlockFlags(flags map[string]bool) EngineOption {
	return func(e *Engine) {
		e.unlocks = make(map[string]bool, len(flags))
		for k, v := range flags {
			e.unlocks[k] = v
		}
	}
}

// NewEngine creates an engine over a fixed topology.
func NewEngine(graph *simgraph.Graph, rule Rule, opts ...EngineOption) (*Engine, error) {
	if graph == nil || graph.NodeCount() == 0 {
		return nil, &OutbreakError{Op: "NewEngine", Cause: ErrEmptyGraph}
	}
	e := &Engine{
		graph:       graph,
		rule:        rule,
		maxAttempts: DefaultMaxInfectionAttempts,
		logger:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ids := make([]uint64, 0, graph.NodeCount())
	for _, n := range graph.Nodes() {
		ids = append(ids, n.ID)
	}
	e.state = newWorldState(ids)
	return e, nil
}

// RunID returns the unique identifier of this run.
func (e *Engine) RunID() string {
	return e.state.RunID
}

// Snapshot returns a copy of the current per-node states.
func (e *Engine) Snapshot() map[uint64]NodeState {
	return e.state.Snapshot()
}

// UnlockFlag reports whether a named scenario flag is set.
func (e *Engine) UnlockFlag(name string) bool {
	return e.unlocks[name]
}

// CurrentTick returns the number of completed ticks.
func (e *Engine) CurrentTick() uint64 {
	return e.state.Tick
}

// InfectedCount returns the number of compromised nodes.
func (e *Engine) InfectedCount() int {
	return e.state.InfectedCount()
}

// SecureCount returns the number of uncompromised nodes.
func (e *Engine) SecureCount() int {
	return e.state.SecureCount()
}

// Integrity returns the current network integrity score.
func (e *Engine) Integrity() (float64, error) {
	return Integrity(e.state)
}

// Seed marks a single node as patient zero. A run is seeded exactly
// once; a second call fails with ErrAlreadySeeded.
func (e *Engine) Seed(nodeID uint64) error {
	if e.seeded {
		return &OutbreakError{Op: "Seed", NodeID: nodeID, Cause: ErrAlreadySeeded}
	}
	if _, ok := e.graph.Node(nodeID); !ok {
		return UnknownNodeError("Seed", nodeID)
	}
	e.state.states[nodeID] = StateInfected
	e.seeded = true
	e.logger.Info("outbreak seeded",
		logging.Component("outbreak"),
		logging.RunID(e.state.RunID),
		logging.NodeID(nodeID),
	)
	if e.recorder != nil {
		if err := e.recorder.Capture(e.state); err != nil {
			return err
		}
	}
	return nil
}

// SeedRandom picks patient zero uniformly at random.
func (e *Engine) SeedRandom() (uint64, error) {
	nodes := e.graph.Nodes()
	id := nodes[e.rng.Intn(len(nodes))].ID
	if err := e.Seed(id); err != nil {
		return 0, err
	}
	return id, nil
}

// Tick advances the simulation by one step. Infections discovered this
// tick are applied only after every infected node has been processed, so
// a node infected at tick N starts spreading at tick N+1.
func (e *Engine) Tick() (TickResult, error) {
	if !e.seeded {
		return TickResult{}, &OutbreakError{Op: "Tick", Cause: ErrNotSeeded}
	}
	start := time.Now()

	snapshot := e.state.Snapshot()
	newly := make(map[uint64]struct{})

	for _, src := range e.state.infectedInOrder() {
		links := e.graph.IncidentLinks(src)
		if len(links) == 0 {
			continue
		}
		srcNode, _ := e.graph.Node(src)
		attempts := len(links)
		if attempts > e.maxAttempts {
			attempts = e.maxAttempts
		}
		for _, li := range e.rng.Perm(len(links))[:attempts] {
			link := links[li]
			dst := link.Other(src)
			if snapshot[dst] == StateInfected {
				continue
			}
			if _, hit := newly[dst]; hit {
				continue
			}
			dstNode, _ := e.graph.Node(dst)
			if e.rule.Transmits(link, srcNode, dstNode, e.rng) {
				newly[dst] = struct{}{}
			}
		}
	}

	for id := range newly {
		e.state.states[id] = StateInfected
	}
	e.state.Tick++

	result := TickResult{
		Tick:          e.state.Tick,
		NewlyInfected: len(newly),
		Stable:        e.stable(),
	}

	infected := e.state.InfectedCount()
	secure := e.state.SecureCount()
	integrity, _ := Integrity(e.state)

	e.logger.Debug("tick complete",
		logging.Component("outbreak"),
		logging.RunID(e.state.RunID),
		logging.Tick(result.Tick),
		logging.Count(result.NewlyInfected),
		logging.Infected(infected),
		logging.Secure(secure),
		logging.Latency(time.Since(start)),
	)
	if e.metrics != nil {
		e.metrics.RecordTick(result.NewlyInfected, infected, secure, integrity, time.Since(start))
	}
	if e.recorder != nil {
		if err := e.recorder.Capture(e.state); err != nil {
			return result, err
		}
	}
	return result, nil
}

// stable reports whether no infected node has a secure neighbor left.
// Probabilistic rules can still report non-stable for many ticks while
// rolls keep failing; stability is about reachability, not odds.
func (e *Engine) stable() bool {
	for _, src := range e.state.infectedInOrder() {
		for _, link := range e.graph.IncidentLinks(src) {
			if e.state.states[link.Other(src)] == StateSecure {
				return false
			}
		}
	}
	return true
}
