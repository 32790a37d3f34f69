package main

import (
	"flag"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwold/netplague/pkg/config"
	"github.com/mwold/netplague/pkg/logging"
	"github.com/mwold/netplague/pkg/metrics"
	"github.com/mwold/netplague/pkg/outbreak"
	"github.com/mwold/netplague/pkg/simgraph"
	"github.com/mwold/netplague/pkg/validation"
	"github.com/mwold/netplague/pkg/visualization"
	"github.com/mwold/netplague/pkg/worldmap"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file (defaults apply when omitted)")
	nodeCount := flag.Int("nodes", 0, "Override node count")
	seed := flag.Int64("seed", 0, "Override random seed (0 = time-based)")
	maxTicks := flag.Int("ticks", 0, "Override maximum ticks")
	metricsAddr := flag.String("metrics-addr", "", "Override Prometheus listen address (e.g. :9090)")
	framesDir := flag.String("frames-dir", "", "Override PNG frame output directory")
	flag.Parse()

	var cfg *config.SimulationConfig
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logging.ErrorLog("failed to load config", logging.Error(err), logging.Path(*configPath))
			os.Exit(1)
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
	if *maxTicks > 0 {
		cfg.Outbreak.MaxTicks = *maxTicks
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *framesDir != "" {
		cfg.Visualization.Enabled = true
		cfg.Visualization.OutputDir = *framesDir
	}

	// Flag overrides bypass config.Validate, so re-check the effective run
	// parameters before committing to them.
	req := &validation.RunRequest{
		NodeCount:   cfg.Placement.NodeCount,
		Ticks:       cfg.Outbreak.MaxTicks,
		Rule:        cfg.Outbreak.Rule,
		Seed:        cfg.Outbreak.Seed,
		PatientZero: cfg.Outbreak.PatientZero,
	}
	if err := validation.ValidateRunRequest(req); err != nil {
		logging.ErrorLog("invalid run parameters", logging.Error(err))
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)

	if cfg.MetricsAddr != "" {
		reg := metrics.DefaultRegistry()
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
			logger.Info("metrics listening", logging.String("addr", cfg.MetricsAddr))
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error("metrics server failed", logging.Error(err))
			}
		}()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", logging.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.SimulationConfig, logger logging.Logger) error {
	startTime := time.Now()
	runSeed := cfg.Outbreak.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))
	reg := metrics.DefaultRegistry()

	sampler, err := worldmap.NewSampler(cfg.World.MapImage)
	if err != nil {
		return err
	}

	placer, err := simgraph.NewPlacer(sampler, cfg.World.Hubs,
		simgraph.WithMaxRetries(cfg.Placement.MaxRetries),
		simgraph.WithPlacerLogger(logger),
		simgraph.WithPlacerMetrics(reg),
	)
	if err != nil {
		return err
	}
	nodes, err := placer.GenerateNodes(rng, cfg.Placement.NodeCount)
	if err != nil {
		return err
	}

	builder := simgraph.NewBuilder(
		simgraph.WithMaxDistance(cfg.Topology.MaxDistanceKm),
		simgraph.WithTopK(cfg.Topology.TopK),
		simgraph.WithLinkCap(cfg.Topology.LinkCap),
		simgraph.WithBuilderLogger(logger),
		simgraph.WithBuilderMetrics(reg),
	)
	links, err := builder.BuildLinks(nodes)
	if err != nil {
		return err
	}
	graph, err := simgraph.NewGraph(nodes, links)
	if err != nil {
		return err
	}

	var rule outbreak.Rule
	if cfg.Outbreak.Rule == "deterministic" {
		rule = outbreak.DeterministicRule{Threshold: cfg.Outbreak.Threshold}
	} else {
		rule = outbreak.ProbabilisticRule{BaseRate: cfg.Outbreak.BaseRate}
	}

	recorder := outbreak.NewRecorder()
	engine, err := outbreak.NewEngine(graph, rule,
		outbreak.WithRNG(rng),
		outbreak.WithMaxInfectionAttempts(cfg.Outbreak.MaxInfectionAttempts),
		outbreak.WithEngineLogger(logger),
		outbreak.WithEngineMetrics(reg),
		outbreak.WithRecorder(recorder),
		outbreak.WithUnlockFlags(cfg.UnlockFlags),
	)
	if err != nil {
		return err
	}

	var patientZero uint64
	if cfg.Outbreak.PatientZero != 0 {
		patientZero = cfg.Outbreak.PatientZero
		if err := engine.Seed(patientZero); err != nil {
			return err
		}
	} else {
		if patientZero, err = engine.SeedRandom(); err != nil {
			return err
		}
	}

	logger.Info("run starting",
		logging.Component("netplague"),
		logging.RunID(engine.RunID()),
		logging.Count(graph.NodeCount()),
		logging.Int("links", graph.LinkCount()),
		logging.Int("isolated", graph.IsolatedCount()),
		logging.NodeID(patientZero),
		logging.Any("seed", runSeed),
	)

	var renderer *visualization.Renderer
	if cfg.Visualization.Enabled {
		if err := os.MkdirAll(cfg.Visualization.OutputDir, 0o755); err != nil {
			return err
		}
		renderer = visualization.NewRenderer(cfg.Visualization.Width, cfg.Visualization.Height,
			visualization.WithNoiseSeed(runSeed))
		if _, err := renderer.WriteFrame(cfg.Visualization.OutputDir, 0, graph, engine.Snapshot()); err != nil {
			return err
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Outbreak.TickInterval)
	defer ticker.Stop()

	for tick := 0; tick < cfg.Outbreak.MaxTicks; tick++ {
		select {
		case <-sigCh:
			logger.Warn("interrupted", logging.Tick(engine.CurrentTick()))
			return report(engine, recorder, logger)
		case <-ticker.C:
		}

		res, err := engine.Tick()
		if err != nil {
			return err
		}
		reg.UpdateSystemMetrics(startTime)

		if renderer != nil {
			if _, err := renderer.WriteFrame(cfg.Visualization.OutputDir, res.Tick, graph, engine.Snapshot()); err != nil {
				return err
			}
		}
		if res.Stable {
			logger.Info("outbreak stable", logging.Tick(res.Tick))
			break
		}
	}
	return report(engine, recorder, logger)
}

func report(engine *outbreak.Engine, recorder *outbreak.Recorder, logger logging.Logger) error {
	integrity, err := engine.Integrity()
	if err != nil {
		return err
	}
	logger.Info("run complete",
		logging.Component("netplague"),
		logging.RunID(engine.RunID()),
		logging.Tick(engine.CurrentTick()),
		logging.Infected(engine.InfectedCount()),
		logging.Secure(engine.SecureCount()),
		logging.Float64("integrity", integrity),
		logging.Int("frames", recorder.FrameCount()),
		logging.Int("compressed_bytes", recorder.CompressedBytes()),
	)
	return nil
}
