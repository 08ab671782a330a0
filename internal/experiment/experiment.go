package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/rotcurve/internal/fdft"
	"github.com/san-kum/rotcurve/internal/galaxy"
)

// GridSpec describes the shared radius grid.
type GridSpec struct {
	Min     float64
	Max     float64
	Samples int
}

func DefaultGridSpec() GridSpec {
	return GridSpec{Min: fdft.DefaultRMin, Max: fdft.DefaultRMax, Samples: fdft.DefaultSamples}
}

type Config struct {
	Grid     GridSpec
	Galaxies []galaxy.Galaxy
}

// GalaxyCurves is one galaxy's evaluated curve set.
type GalaxyCurves struct {
	Galaxy galaxy.Galaxy
	*fdft.Components
}

type Result struct {
	Radii  fdft.Curve
	Curves []GalaxyCurves
}

// Lookup returns the curves for the named galaxy.
func (r *Result) Lookup(name string) (GalaxyCurves, bool) {
	for _, gc := range r.Curves {
		if gc.Galaxy.Name == name {
			return gc, true
		}
	}
	return GalaxyCurves{}, false
}

func (r *Result) Galaxies() []galaxy.Galaxy {
	out := make([]galaxy.Galaxy, len(r.Curves))
	for i, gc := range r.Curves {
		out[i] = gc.Galaxy
	}
	return out
}

type Experiment struct {
	cfg     Config
	catalog *galaxy.Catalog
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup validates the galaxy table. It must be called before Run.
func (e *Experiment) Setup() error {
	if len(e.cfg.Galaxies) == 0 {
		return fmt.Errorf("experiment: no galaxies configured")
	}
	cat, err := galaxy.NewCatalog(e.cfg.Galaxies...)
	if err != nil {
		return err
	}
	e.catalog = cat
	return nil
}

// Run builds the radius grid once and evaluates every galaxy on it, in table order.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	radii, err := fdft.Grid(e.cfg.Grid.Min, e.cfg.Grid.Max, e.cfg.Grid.Samples)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Radii:  radii,
		Curves: make([]GalaxyCurves, 0, e.catalog.Len()),
	}
	for _, g := range e.catalog.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := fdft.Evaluate(radii, g.Params)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", g.Name, err)
		}
		res.Curves = append(res.Curves, GalaxyCurves{Galaxy: g, Components: c})
	}
	return res, nil
}

// Run is a convenience wrapper for New, Setup and Run.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	e := New(cfg)
	if err := e.Setup(); err != nil {
		return nil, err
	}
	return e.Run(ctx)
}

// Default evaluates the Section6 table on the default grid.
func Default(ctx context.Context) (*Result, error) {
	return Run(ctx, Config{Grid: DefaultGridSpec(), Galaxies: galaxy.Section6()})
}
