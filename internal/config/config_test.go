package config

import (
	"path/filepath"
	"testing"

	"github.com/full2null/fallingsimulator/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cd != 0.42 {
		t.Errorf("expected default Cd 0.42, got %v", cfg.Cd)
	}
	if cfg.Seconds < 1 {
		t.Error("default seconds must be at least 1")
	}

	params, sc := cfg.Split()
	if err := params.Validate(); err != nil {
		t.Errorf("default parameters invalid: %v", err)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Mass = 85
	cfg.Mode = sim.ModeVelocity
	cfg.AirResistance = false

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Mass != 85 || got.Mode != sim.ModeVelocity || got.AirResistance {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("skydiver")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Mass != 85 {
		t.Errorf("expected mass 85, got %v", cfg.Mass)
	}

	params, sc := cfg.Split()
	if err := params.Validate(); err != nil {
		t.Errorf("preset parameters invalid: %v", err)
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("preset config invalid: %v", err)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestAllPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		params, sc := GetPreset(name).Split()
		if err := params.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if err := sc.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
