package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwold/netplague/pkg/config"
	"github.com/mwold/netplague/pkg/outbreak"
	"github.com/mwold/netplague/pkg/simgraph"
	"github.com/mwold/netplague/pkg/worldmap"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F5F")).
			MarginLeft(2).
			MarginTop(1)

	mapBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5FAFFF")).
			Padding(0, 1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginLeft(2)

	secureStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FFF5F"))
	infectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	pausedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF5F")).
			Bold(true)

	gaugeFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	gaugeEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type keyMap struct {
	Pause  key.Binding
	Step   key.Binding
	Faster key.Binding
	Slower key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	Step: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "single step"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "slower"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Faster, k.Slower, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step},
		{k.Faster, k.Slower},
		{k.Quit},
	}
}

type model struct {
	graph    *simgraph.Graph
	engine   *outbreak.Engine
	help     help.Model
	keys     keyMap
	width    int
	height   int
	interval time.Duration
	paused   bool
	stable   bool
	last     outbreak.TickResult
	start    time.Time
}

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func initialModel(graph *simgraph.Graph, engine *outbreak.Engine, interval time.Duration) model {
	return model{
		graph:    graph,
		engine:   engine,
		help:     help.New(),
		keys:     keys,
		interval: interval,
		start:    time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if !m.paused && !m.stable {
			m.advance()
		}
		return m, tickCmd(m.interval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused

		case key.Matches(msg, m.keys.Step):
			if !m.stable {
				m.advance()
			}

		case key.Matches(msg, m.keys.Faster):
			if m.interval > 25*time.Millisecond {
				m.interval /= 2
			}

		case key.Matches(msg, m.keys.Slower):
			if m.interval < 4*time.Second {
				m.interval *= 2
			}
		}
	}
	return m, nil
}

func (m *model) advance() {
	res, err := m.engine.Tick()
	if err != nil {
		return
	}
	m.last = res
	m.stable = res.Stable
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("netplague - live outbreak"))
	s.WriteString("\n\n")

	mapW := m.width - 40
	if mapW < 40 {
		mapW = 40
	}
	mapH := m.height - 10
	if mapH < 12 {
		mapH = 12
	}
	if mapH > mapW/2 {
		mapH = mapW / 2
	}

	worldBox := mapBoxStyle.Render(m.renderMap(mapW, mapH))
	statsBox := statsBoxStyle.Render(m.renderStats())
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, worldBox, statsBox))

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return s.String()
}

// renderMap projects every node onto a character grid. Infected cells win
// over secure ones when several nodes share a cell.
func (m model) renderMap(w, h int) string {
	const (
		cellEmpty = iota
		cellSecure
		cellInfected
	)
	grid := make([]int, w*h)

	states := m.engine.Snapshot()
	for _, node := range m.graph.Nodes() {
		x := int((node.Coord.Lon + 180) / 360 * float64(w))
		y := int((1 - (node.Coord.Lat+90)/180) * float64(h))
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		idx := y*w + x
		if states[node.ID] == outbreak.StateInfected {
			grid[idx] = cellInfected
		} else if grid[idx] == cellEmpty {
			grid[idx] = cellSecure
		}
	}

	var s strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch grid[y*w+x] {
			case cellInfected:
				s.WriteString(infectedStyle.Render("●"))
			case cellSecure:
				s.WriteString(secureStyle.Render("·"))
			default:
				s.WriteByte(' ')
			}
		}
		if y < h-1 {
			s.WriteByte('\n')
		}
	}
	return s.String()
}

func (m model) renderStats() string {
	integrity, err := m.engine.Integrity()
	if err != nil {
		integrity = 0
	}

	status := "running"
	if m.stable {
		status = "stable"
	} else if m.paused {
		status = pausedStyle.Render("paused")
	}

	return fmt.Sprintf(`Outbreak
━━━━━━━━━━━━━━━━━━
Tick:       %d
Infected:   %d
Secure:     %d
New/tick:   %d
Status:     %s

Integrity
━━━━━━━━━━━━━━━━━━
%s %.1f%%

Run
━━━━━━━━━━━━━━━━━━
Interval:   %s
Elapsed:    %s
Nodes:      %d
Links:      %d`,
		m.engine.CurrentTick(),
		m.engine.InfectedCount(),
		m.engine.SecureCount(),
		m.last.NewlyInfected,
		status,
		integrityGauge(integrity, 18),
		integrity,
		m.interval,
		time.Since(m.start).Round(time.Second),
		m.graph.NodeCount(),
		m.graph.LinkCount(),
	)
}

func integrityGauge(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return gaugeFullStyle.Render(strings.Repeat("█", filled)) +
		gaugeEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	nodeCount := flag.Int("nodes", 0, "Override node count")
	seed := flag.Int64("seed", 0, "Override random seed (0 = time-based)")
	flag.Parse()

	var cfg *config.SimulationConfig
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}
	if *nodeCount > 0 {
		cfg.Placement.NodeCount = *nodeCount
	}
	if *seed != 0 {
		cfg.Outbreak.Seed = *seed
	}

	runSeed := cfg.Outbreak.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))

	sampler, err := worldmap.NewSampler(cfg.World.MapImage)
	if err != nil {
		log.Fatalf("Failed to build sampler: %v", err)
	}
	placer, err := simgraph.NewPlacer(sampler, cfg.World.Hubs,
		simgraph.WithMaxRetries(cfg.Placement.MaxRetries))
	if err != nil {
		log.Fatalf("Failed to build placer: %v", err)
	}
	nodes, err := placer.GenerateNodes(rng, cfg.Placement.NodeCount)
	if err != nil {
		log.Fatalf("Failed to place nodes: %v", err)
	}
	builder := simgraph.NewBuilder(
		simgraph.WithMaxDistance(cfg.Topology.MaxDistanceKm),
		simgraph.WithTopK(cfg.Topology.TopK),
	)
	links, err := builder.BuildLinks(nodes)
	if err != nil {
		log.Fatalf("Failed to build links: %v", err)
	}
	graph, err := simgraph.NewGraph(nodes, links)
	if err != nil {
		log.Fatalf("Failed to assemble graph: %v", err)
	}

	var rule outbreak.Rule
	if cfg.Outbreak.Rule == "deterministic" {
		rule = outbreak.DeterministicRule{Threshold: cfg.Outbreak.Threshold}
	} else {
		rule = outbreak.ProbabilisticRule{BaseRate: cfg.Outbreak.BaseRate}
	}
	engine, err := outbreak.NewEngine(graph, rule,
		outbreak.WithRNG(rng),
		outbreak.WithMaxInfectionAttempts(cfg.Outbreak.MaxInfectionAttempts),
		outbreak.WithUnlockFlags(cfg.UnlockFlags),
	)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}
	if _, err := engine.SeedRandom(); err != nil {
		log.Fatalf("Failed to seed outbreak: %v", err)
	}

	p := tea.NewProgram(initialModel(graph, engine, cfg.Outbreak.TickInterval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
