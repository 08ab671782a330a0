package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rotcurve/internal/fdft"
	"github.com/san-kum/rotcurve/internal/galaxy"
)

var ErrSweep = errors.New("automation: invalid sweep")

// Sweep varies one model parameter of a galaxy and evaluates the model at
// a fixed radius for every value.
type Sweep struct {
	Galaxy galaxy.Galaxy
	Param  string
	Min    float64
	Max    float64
	Steps  int
	Radius float64
	Log    bool // space values logarithmically
}

// SweepResult is the model evaluated at one parameter value.
type SweepResult struct {
	Value  float64
	Params fdft.Params
	Total  float64
	Newton float64
	Psi    float64
}

// Values returns the parameter values the sweep visits, in order.
func (s *Sweep) Values() ([]float64, error) {
	if s.Steps < 2 {
		return nil, fmt.Errorf("%w: need at least 2 steps, got %d", ErrSweep, s.Steps)
	}
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0) {
		return nil, fmt.Errorf("%w: range must be finite", ErrSweep)
	}
	dst := make([]float64, s.Steps)
	if s.Log {
		if !(s.Min > 0) || !(s.Max > 0) {
			return nil, fmt.Errorf("%w: log sweep needs a positive range, got [%g, %g]", ErrSweep, s.Min, s.Max)
		}
		return floats.LogSpan(dst, s.Min, s.Max), nil
	}
	return floats.Span(dst, s.Min, s.Max), nil
}

// RunSweep evaluates the sweep. Each step starts from the galaxy's own
// parameters with only the swept one replaced.
func RunSweep(ctx context.Context, s *Sweep) ([]SweepResult, error) {
	if _, ok := s.Galaxy.Params.GetParams()[s.Param]; !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrSweep, fdft.ErrUnknownParam, s.Param)
	}
	values, err := s.Values()
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, len(values))
	for i, v := range values {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		p := s.Galaxy.Params
		if err := p.SetParam(s.Param, v); err != nil {
			return results, err
		}

		total, newton, psi, err := fdft.VelocityAt(s.Radius, p)
		if err != nil {
			return results, fmt.Errorf("step %d (%s=%g): %w", i+1, s.Param, v, err)
		}

		results = append(results, SweepResult{
			Value:  v,
			Params: p,
			Total:  total,
			Newton: newton,
			Psi:    psi,
		})

		slog.Debug("sweep step", "galaxy", s.Galaxy.Name, "step", i+1, "of", len(values), s.Param, v, "total", total)
	}

	return results, nil
}

// SweepFile is the YAML form of a sweep. The galaxy is taken from the
// catalog by name; Params entries override its parameters before sweeping.
type SweepFile struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Galaxy      string             `yaml:"galaxy"`
	Params      map[string]float64 `yaml:"params"`
	Param       string             `yaml:"param"`
	Min         float64            `yaml:"min"`
	Max         float64            `yaml:"max"`
	Steps       int                `yaml:"steps"`
	Radius      float64            `yaml:"radius"`
	Log         bool               `yaml:"log"`
}

// LoadSweep reads a sweep description and resolves its galaxy against cat.
func LoadSweep(path string, cat *galaxy.Catalog) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f SweepFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return f.Resolve(cat)
}

func (f *SweepFile) Resolve(cat *galaxy.Catalog) (*Sweep, error) {
	g, err := cat.Get(f.Galaxy)
	if err != nil {
		return nil, err
	}
	for k, v := range f.Params {
		if err := g.Params.SetParam(k, v); err != nil {
			return nil, err
		}
	}
	return &Sweep{
		Galaxy: g,
		Param:  f.Param,
		Min:    f.Min,
		Max:    f.Max,
		Steps:  f.Steps,
		Radius: f.Radius,
		Log:    f.Log,
	}, nil
}
