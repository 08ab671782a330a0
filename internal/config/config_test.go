package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/san-kum/rotcurve/internal/chart"
	"github.com/san-kum/rotcurve/internal/galaxy"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Path != "section6_fdft_rotation_curves_dark.png" {
		t.Errorf("unexpected output path %s", cfg.Output.Path)
	}
	if cfg.Output.DPI != 300 {
		t.Errorf("expected dpi 300, got %d", cfg.Output.DPI)
	}
	if cfg.Grid.Min != 0.5 || cfg.Grid.Max != 50 || cfg.Grid.Samples != 600 {
		t.Errorf("unexpected grid %+v", cfg.Grid)
	}
	if len(cfg.Galaxies) != 3 {
		t.Fatalf("expected 3 galaxies, got %d", len(cfg.Galaxies))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	want := galaxy.Section6()
	got := cfg.GetGalaxies()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("galaxy %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestToExperiment(t *testing.T) {
	cfg := DefaultConfig()
	exp := cfg.ToExperiment()

	if exp.Grid.Samples != 600 {
		t.Errorf("expected 600 samples, got %d", exp.Grid.Samples)
	}
	if exp.Galaxies[1].Name != "NGC 1277" {
		t.Errorf("unexpected order: %s", exp.Galaxies[1].Name)
	}
}

func TestChartOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.DPI = 96
	cfg.Theme = "light"

	opts := cfg.ChartOptions()
	if opts.DPI != 96 {
		t.Errorf("expected dpi 96, got %d", opts.DPI)
	}
	if opts.Width != 9.5*vg.Inch || opts.Height != 6.5*vg.Inch {
		t.Errorf("unexpected size %vx%v", opts.Width, opts.Height)
	}
	if opts.Theme.Name != "light" {
		t.Errorf("expected light theme, got %s", opts.Theme.Name)
	}
	if opts.Title != chart.DefaultOptions().Title {
		t.Errorf("unexpected title %q", opts.Title)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output", func(c *Config) { c.Output.Path = "" }},
		{"zero dpi", func(c *Config) { c.Output.DPI = 0 }},
		{"negative width", func(c *Config) { c.Output.Width = -1 }},
		{"bad format", func(c *Config) { c.Output.Path = "chart.bmp" }},
		{"unknown theme", func(c *Config) { c.Theme = "solarized" }},
		{"one sample", func(c *Config) { c.Grid.Samples = 1 }},
		{"inverted grid", func(c *Config) { c.Grid.Min, c.Grid.Max = 50, 0.5 }},
		{"no galaxies", func(c *Config) { c.Galaxies = nil }},
		{"bad color", func(c *Config) { c.Galaxies[0].Color = "blue" }},
		{"zero mass", func(c *Config) { c.Galaxies[0].Mass = 0 }},
		{"negative kappa", func(c *Config) { c.Galaxies[1].Kappa = -0.1 }},
		{"duplicate", func(c *Config) { c.Galaxies[2].Name = c.Galaxies[0].Name }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotcurve.yaml")

	cfg := DefaultConfig()
	cfg.Output.DPI = 150
	cfg.Galaxies = cfg.Galaxies[:1]
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Output.DPI != 150 {
		t.Errorf("expected dpi 150, got %d", loaded.Output.DPI)
	}
	if len(loaded.Galaxies) != 1 || loaded.Galaxies[0].Name != "DF44" {
		t.Errorf("galaxy table not replaced: %+v", loaded.Galaxies)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("theme: light\ngrid:\n  samples: 100\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "light" || cfg.Grid.Samples != 100 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Grid.Max != 50 || cfg.Output.DPI != 300 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if len(cfg.Galaxies) != 3 {
		t.Errorf("expected default galaxies, got %d", len(cfg.Galaxies))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("newtonian")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	for _, g := range cfg.Galaxies {
		if g.Kappa != 0 {
			t.Errorf("%s: expected kappa 0, got %f", g.Name, g.Kappa)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("newtonian preset invalid: %v", err)
	}

	// presets are not shared
	cfg.Galaxies[0].Mass = 1
	if GetPreset("newtonian").Galaxies[0].Mass == 1 {
		t.Error("preset mutated through returned config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	want := []string{"extended", "light", "newtonian", "section6"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("preset %d: got %s, want %s", i, presets[i], want[i])
		}
		if err := GetPreset(presets[i]).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", presets[i], err)
		}
	}
}

func TestParseEnv(t *testing.T) {
	e, err := ParseEnvFrom(map[string]string{
		"ROTCURVE_OUTPUT": "out.svg",
		"ROTCURVE_DPI":    "72",
		"ROTCURVE_THEME":  "light",
		"ROTCURVE_DEBUG":  "true",
		"ROTCURVE_SHOW":   "false",
		"UNRELATED":       "x",
	})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if !e.Debug {
		t.Error("expected debug")
	}

	cfg := DefaultConfig()
	e.Apply(cfg)
	if cfg.Output.Path != "out.svg" || cfg.Output.DPI != 72 || cfg.Theme != "light" {
		t.Errorf("overrides not applied: %+v", cfg.Output)
	}
	if cfg.Output.Show {
		t.Error("expected show disabled")
	}
}

func TestParseEnvEmpty(t *testing.T) {
	e, err := ParseEnvFrom(map[string]string{})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}

	cfg := DefaultConfig()
	e.Apply(cfg)
	if cfg.Output.DPI != 300 || !cfg.Output.Show {
		t.Errorf("defaults changed by empty env: %+v", cfg.Output)
	}
}

func TestParseEnvError(t *testing.T) {
	_, err := ParseEnvFrom(map[string]string{"ROTCURVE_DPI": "lots"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); len(got) < 10 || got[:10] != "parse env:" {
		t.Errorf("expected wrapped error, got %q", got)
	}
}

func TestLoadWithPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dpi.yaml")
	if err := os.WriteFile(path, []byte("output:\n  dpi: 120\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("extended")
	cfg, err := LoadWith(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Output.DPI != 120 {
		t.Errorf("expected dpi 120, got %d", cfg.Output.DPI)
	}
	if cfg.Output.Path != base.Output.Path {
		t.Errorf("preset output lost: %s", cfg.Output.Path)
	}
	for _, g := range cfg.Galaxies {
		if g.Lambda != 15 {
			t.Errorf("%s: expected preset lambda 15, got %g", g.Name, g.Lambda)
		}
	}
}
