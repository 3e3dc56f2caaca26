package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("could not load defaults: %v", err)
	}

	if cfg.Lake.Map != FourByFour {
		t.Errorf("expected the %v map by default, got %v", FourByFour,
			cfg.Lake.Map)
	}
	if cfg.Lake.Discount != 0.9 {
		t.Errorf("expected a default discount of 0.9, got %v",
			cfg.Lake.Discount)
	}
	if cfg.Learn.Algorithm != QLearning {
		t.Errorf("expected %v by default, got %v", QLearning,
			cfg.Learn.Algorithm)
	}
	if cfg.Plan.Theta <= 0 {
		t.Errorf("expected a positive default convergence threshold, "+
			"got %v", cfg.Plan.Theta)
	}
}

func TestLoadConfigFile(t *testing.T) {
	contents := []byte(`
lake:
  map: 8x8
  slippery: true
learn:
  algorithm: sarsa
  epsilon: 0.2
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}

	if cfg.Lake.Map != EightByEight {
		t.Errorf("expected the %v map, got %v", EightByEight, cfg.Lake.Map)
	}
	if !cfg.Lake.Slippery {
		t.Errorf("expected a slippery lake")
	}
	if cfg.Learn.Algorithm != Sarsa {
		t.Errorf("expected %v, got %v", Sarsa, cfg.Learn.Algorithm)
	}
	if cfg.Learn.Epsilon != 0.2 {
		t.Errorf("expected epsilon 0.2, got %v", cfg.Learn.Epsilon)
	}

	// Keys not in the file keep their defaults
	if cfg.Lake.Cutoff != 100 {
		t.Errorf("expected the default cutoff, got %v", cfg.Lake.Cutoff)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such.yaml")); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestValidateRejectsInvalidSettings(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("could not load defaults: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown map", func(c *Config) { c.Lake.Map = "16x16" }},
		{"discount of one", func(c *Config) { c.Lake.Discount = 1.0 }},
		{"negative cutoff", func(c *Config) { c.Lake.Cutoff = -1 }},
		{"zero theta", func(c *Config) { c.Plan.Theta = 0 }},
		{"unknown algorithm", func(c *Config) { c.Learn.Algorithm = "dyna" }},
		{"epsilon above one", func(c *Config) { c.Learn.Epsilon = 1.5 }},
		{"zero learning rate", func(c *Config) { c.Learn.LearningRate = 0 }},
		{"zero eval episodes", func(c *Config) { c.Learn.EvalEpisodes = 0 }},
	}

	for _, test := range tests {
		cfg := valid()
		test.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%v: expected an error, got none", test.name)
		}
	}
}

func TestCreateEnvironment(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("could not load defaults: %v", err)
	}

	f, step, err := cfg.CreateEnvironment()
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	if !step.First() {
		t.Errorf("expected a first timestep, got %v", step.StepType)
	}
	if got := f.Lake().NumStates(); got != 16 {
		t.Errorf("expected 16 states on the default map, got %d", got)
	}

	cfg.Lake.Map = EightByEight
	f, _, err = cfg.CreateEnvironment()
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	if got := f.Lake().NumStates(); got != 64 {
		t.Errorf("expected 64 states on the %v map, got %d", EightByEight,
			got)
	}
}
