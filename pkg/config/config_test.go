package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mwold/netplague/pkg/validation"
	"github.com/mwold/netplague/pkg/worldmap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netplague.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.World.Hubs) == 0 {
		t.Error("default config has no hubs")
	}
	if cfg.Outbreak.Rule != "probabilistic" {
		t.Errorf("default rule = %q", cfg.Outbreak.Rule)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
placement:
  node_count: 120
topology:
  max_distance_km: 800
  top_k: 2
outbreak:
  rule: deterministic
  threshold: 0.6
  seed: 7
  max_ticks: 50
log_level: debug
unlock_flags:
  satellite_uplinks: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Placement.NodeCount != 120 {
		t.Errorf("node count = %d, want 120", cfg.Placement.NodeCount)
	}
	if cfg.Topology.MaxDistanceKm != 800 {
		t.Errorf("max distance = %v, want 800", cfg.Topology.MaxDistanceKm)
	}
	if cfg.Outbreak.Rule != "deterministic" || cfg.Outbreak.Threshold != 0.6 {
		t.Errorf("outbreak config not applied: %+v", cfg.Outbreak)
	}
	if !cfg.UnlockFlags["satellite_uplinks"] {
		t.Error("unlock flag dropped")
	}
	// Omitted fields keep defaults.
	if cfg.Placement.MaxRetries != 8 {
		t.Errorf("max retries = %d, want default 8", cfg.Placement.MaxRetries)
	}
	if cfg.Outbreak.TickInterval != 100*time.Millisecond {
		t.Errorf("tick interval = %v, want default 100ms", cfg.Outbreak.TickInterval)
	}
	if len(cfg.World.Hubs) == 0 {
		t.Error("default hub table not applied")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "placement: [broken")
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			"bad rule",
			"placement:\n  node_count: 100\noutbreak:\n  rule: quantum\n",
			"Rule",
		},
		{
			"node count too small",
			"placement:\n  node_count: 1\n",
			"NodeCount",
		},
		{
			"base rate out of range",
			"placement:\n  node_count: 100\noutbreak:\n  rule: probabilistic\n  base_rate: 1.5\n",
			"BaseRate",
		},
		{
			"visualization without output dir",
			"placement:\n  node_count: 100\nvisualization:\n  enabled: true\n",
			"OutputDir",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("invalid config accepted")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %s", err, tc.want)
			}
		})
	}
}

func TestValidate_BadHubs(t *testing.T) {
	cfg := DefaultConfig()
	hubs := make([]worldmap.HubRegion, len(cfg.World.Hubs))
	copy(hubs, cfg.World.Hubs)
	hubs[0].Weight = -1
	cfg.World.Hubs = hubs

	if err := cfg.Validate(); err == nil {
		t.Error("negative hub weight accepted")
	}
}

// Run parameters assembled from a config must pass the same request
// validation the CLI applies after flag overrides.
func TestRunRequestFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	req := &validation.RunRequest{
		NodeCount:   cfg.Placement.NodeCount,
		Ticks:       cfg.Outbreak.MaxTicks,
		Rule:        cfg.Outbreak.Rule,
		Seed:        cfg.Outbreak.Seed,
		PatientZero: cfg.Outbreak.PatientZero,
	}
	if err := validation.ValidateRunRequest(req); err != nil {
		t.Fatalf("default run request invalid: %v", err)
	}

	req.NodeCount = 1
	if err := validation.ValidateRunRequest(req); err == nil {
		t.Error("expected error for node count below minimum")
	}

	req.NodeCount = cfg.Placement.NodeCount
	req.Rule = "viral"
	if err := validation.ValidateRunRequest(req); err == nil {
		t.Error("expected error for unknown rule")
	}
}
