package config

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rotcurve/internal/chart"
	"github.com/san-kum/rotcurve/internal/experiment"
	"github.com/san-kum/rotcurve/internal/fdft"
	"github.com/san-kum/rotcurve/internal/galaxy"
)

const (
	DefaultDPI    = 300
	DefaultWidth  = 9.5 // inches
	DefaultHeight = 6.5 // inches
	DefaultTheme  = "dark"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Grid     GridConfig     `yaml:"grid"`
	Theme    string         `yaml:"theme"`
	Galaxies []GalaxyConfig `yaml:"galaxies"`
}

type OutputConfig struct {
	Path   string  `yaml:"path"`
	DPI    int     `yaml:"dpi"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Show   bool    `yaml:"show"`
}

type GridConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Samples int     `yaml:"samples"`
}

type GalaxyConfig struct {
	Name   string      `yaml:"name"`
	Color  string      `yaml:"color"`
	Mass   float64     `yaml:"mass"`
	Kappa  float64     `yaml:"kappa"`
	Lambda float64     `yaml:"lambda"`
	Label  LabelConfig `yaml:"label"`
}

type LabelConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path:   chart.DefaultOutput,
			DPI:    DefaultDPI,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Show:   true,
		},
		Grid: GridConfig{
			Min:     fdft.DefaultRMin,
			Max:     fdft.DefaultRMax,
			Samples: fdft.DefaultSamples,
		},
		Theme:    DefaultTheme,
		Galaxies: FromGalaxies(galaxy.Section6()),
	}
}

// FromGalaxies converts a galaxy table into its config form.
func FromGalaxies(gs []galaxy.Galaxy) []GalaxyConfig {
	out := make([]GalaxyConfig, len(gs))
	for i, g := range gs {
		out[i] = GalaxyConfig{
			Name:   g.Name,
			Color:  g.Color,
			Mass:   g.Params.Mass,
			Kappa:  g.Params.Kappa,
			Lambda: g.Params.Lambda,
			Label:  LabelConfig{X: g.Label.X, Y: g.Label.Y},
		}
	}
	return out
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	return LoadWith(path, DefaultConfig())
}

// LoadWith reads a YAML file on top of base. A file that names galaxies
// replaces the whole galaxy table of base.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Galaxies = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(cfg.Galaxies) == 0 {
		cfg.Galaxies = append([]GalaxyConfig(nil), base.Galaxies...)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks everything that can be checked before evaluation.
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	if c.Output.DPI <= 0 {
		return fmt.Errorf("%w: dpi must be positive, got %d", ErrInvalid, c.Output.DPI)
	}
	if !(c.Output.Width > 0) || !(c.Output.Height > 0) {
		return fmt.Errorf("%w: figure size must be positive, got %gx%g", ErrInvalid, c.Output.Width, c.Output.Height)
	}
	if !chart.Supported(chart.FormatFromPath(c.Output.Path)) {
		return fmt.Errorf("%w: %w", ErrInvalid, chart.ErrFormat)
	}
	if !knownTheme(c.Theme) {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, chart.ThemeNames())
	}
	if _, err := fdft.Grid(c.Grid.Min, c.Grid.Max, c.Grid.Samples); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(c.Galaxies) == 0 {
		return fmt.Errorf("%w: no galaxies", ErrInvalid)
	}
	for _, g := range c.Galaxies {
		if _, err := chart.ParseColor(g.Color, 1); err != nil {
			return fmt.Errorf("%w: galaxy %q: %w", ErrInvalid, g.Name, err)
		}
	}
	if _, err := galaxy.NewCatalog(c.GetGalaxies()...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func knownTheme(name string) bool {
	for _, n := range chart.ThemeNames() {
		if n == name {
			return true
		}
	}
	return false
}

func (c *Config) GetGalaxies() []galaxy.Galaxy {
	out := make([]galaxy.Galaxy, len(c.Galaxies))
	for i, g := range c.Galaxies {
		out[i] = galaxy.Galaxy{
			Name:   g.Name,
			Color:  g.Color,
			Params: fdft.Params{Mass: g.Mass, Kappa: g.Kappa, Lambda: g.Lambda},
			Label:  galaxy.Annotation{X: g.Label.X, Y: g.Label.Y},
		}
	}
	return out
}

func (c *Config) ToExperiment() experiment.Config {
	return experiment.Config{
		Grid: experiment.GridSpec{
			Min:     c.Grid.Min,
			Max:     c.Grid.Max,
			Samples: c.Grid.Samples,
		},
		Galaxies: c.GetGalaxies(),
	}
}

func (c *Config) ChartOptions() chart.Options {
	opts := chart.DefaultOptions()
	opts.Width = vg.Length(c.Output.Width) * vg.Inch
	opts.Height = vg.Length(c.Output.Height) * vg.Inch
	opts.DPI = c.Output.DPI
	opts.Theme = chart.GetTheme(c.Theme)
	return opts
}
