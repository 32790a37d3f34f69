package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mwold/netplague/pkg/validation"
	"github.com/mwold/netplague/pkg/worldmap"
)

// WorldConfig describes the map and the population hub table.
type WorldConfig struct {
	// MapImage is an optional equirectangular map file. When empty or
	// unreadable the polygon fallback sampler is used.
	MapImage string               `yaml:"map_image"`
	Hubs     []worldmap.HubRegion `yaml:"hubs"`
}

// PlacementConfig controls node generation.
type PlacementConfig struct {
	NodeCount  int `yaml:"node_count" validate:"required,min=2,max=100000"`
	MaxRetries int `yaml:"max_retries" validate:"min=0,max=64"`
}

// TopologyConfig controls link building.
type TopologyConfig struct {
	MaxDistanceKm float64 `yaml:"max_distance_km"`
	TopK          int     `yaml:"top_k" validate:"min=0,max=32"`
	LinkCap       int     `yaml:"link_cap" validate:"min=0"`
}

// OutbreakConfig controls the infection run.
type OutbreakConfig struct {
	Rule                 string        `yaml:"rule" validate:"required,oneof=deterministic probabilistic"`
	BaseRate             float64       `yaml:"base_rate"`
	Threshold            float64       `yaml:"threshold"`
	MaxInfectionAttempts int           `yaml:"max_infection_attempts" validate:"min=0,max=64"`
	Seed                 int64         `yaml:"seed"`
	PatientZero          uint64        `yaml:"patient_zero"`
	MaxTicks             int           `yaml:"max_ticks" validate:"min=0,max=1000000"`
	TickInterval         time.Duration `yaml:"tick_interval"`
}

// VisualizationConfig controls PNG frame export.
type VisualizationConfig struct {
	Enabled   bool   `yaml:"enabled"`
	OutputDir string `yaml:"output_dir"`
	Width     int    `yaml:"width" validate:"min=0,max=8192"`
	Height    int    `yaml:"height" validate:"min=0,max=8192"`
}

// SimulationConfig is the root configuration for a run.
type SimulationConfig struct {
	World         WorldConfig         `yaml:"world"`
	Placement     PlacementConfig     `yaml:"placement"`
	Topology      TopologyConfig      `yaml:"topology"`
	Outbreak      OutbreakConfig      `yaml:"outbreak"`
	Visualization VisualizationConfig `yaml:"visualization"`

	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	MetricsAddr string `yaml:"metrics_addr"`

	// UnlockFlags are opaque scenario switches threaded through to the
	// engine; the core never interprets them.
	UnlockFlags map[string]bool `yaml:"unlock_flags"`
}

// DefaultConfig returns a runnable configuration: default hub table and
// polygon sampling, a mid-size world, probabilistic spread.
func DefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		World: WorldConfig{Hubs: worldmap.DefaultHubs},
		Placement: PlacementConfig{
			NodeCount:  600,
			MaxRetries: 8,
		},
		Topology: TopologyConfig{
			MaxDistanceKm: 1500,
			TopK:          3,
		},
		Outbreak: OutbreakConfig{
			Rule:                 "probabilistic",
			BaseRate:             0.05,
			Threshold:            0.5,
			MaxInfectionAttempts: 4,
			MaxTicks:             500,
			TickInterval:         100 * time.Millisecond,
		},
		Visualization: VisualizationConfig{
			Width:  1280,
			Height: 640,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML config file, applies defaults for omitted fields,
// and validates the result.
func Load(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *SimulationConfig) applyDefaults() {
	if len(c.World.Hubs) == 0 {
		c.World.Hubs = worldmap.DefaultHubs
	}
	c.Placement.MaxRetries = validation.DefaultOrInt(c.Placement.MaxRetries, 8)
	c.Topology.MaxDistanceKm = validation.DefaultOrFloat(c.Topology.MaxDistanceKm, 1500)
	c.Topology.TopK = validation.DefaultOrInt(c.Topology.TopK, 3)
	c.Outbreak.MaxInfectionAttempts = validation.DefaultOrInt(c.Outbreak.MaxInfectionAttempts, 4)
	c.Outbreak.TickInterval = validation.DefaultOrDuration(c.Outbreak.TickInterval, 100*time.Millisecond)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Visualization.Width <= 0 {
		c.Visualization.Width = 1280
	}
	if c.Visualization.Height <= 0 {
		c.Visualization.Height = 640
	}
}

// Validate checks struct tags, ranges, and the hub table.
func (c *SimulationConfig) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	cv := validation.NewConfigValidator("SimulationConfig")
	cv.PositiveFloat("Topology.MaxDistanceKm", c.Topology.MaxDistanceKm).
		RangeFloat("Outbreak.BaseRate", c.Outbreak.BaseRate, 0, 1).
		RangeFloat("Outbreak.Threshold", c.Outbreak.Threshold, 0, 1).
		MinDuration("Outbreak.TickInterval", c.Outbreak.TickInterval, time.Millisecond).
		Custom("World.Hubs", func() error {
			return validation.ValidateHubs(c.World.Hubs)
		}).
		When(c.Visualization.Enabled, func(v *validation.ConfigValidator) {
			v.Required("Visualization.OutputDir", c.Visualization.OutputDir)
		})
	return cv.Validate()
}
