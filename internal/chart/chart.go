package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/rotcurve/internal/experiment"
	"github.com/san-kum/rotcurve/internal/fdft"
)

var ErrNoData = errors.New("chart: nothing to plot")

// Options configures figure layout and output resolution.
type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
	Theme  Theme

	Title  string
	XLabel string
	YLabel string

	XMin, XMax float64
	YMin, YMax float64

	// XStep and YStep space the labelled major ticks; each interval is split
	// into MinorTicks parts. A zero step keeps gonum's default ticker.
	XStep, YStep float64
	MinorTicks   int

	TitleSize      vg.Length
	LabelSize      vg.Length
	TickSize       vg.Length
	LegendSize     vg.Length
	AnnotationSize vg.Length
}

// DefaultOptions returns the layout of the published rotation-curve figure.
func DefaultOptions() Options {
	return Options{
		Width:          9.5 * vg.Inch,
		Height:         6.5 * vg.Inch,
		DPI:            300,
		Theme:          ThemeDark,
		Title:          "Galactic Rotation Curves in FDFT",
		XLabel:         "Radius  [kpc]",
		YLabel:         "Circular velocity  [km/s]",
		XMin:           0,
		XMax:           50,
		YMin:           0,
		YMax:           340,
		XStep:          10,
		YStep:          50,
		MinorTicks:     5,
		TitleSize:      vg.Points(16),
		LabelSize:      vg.Points(14),
		TickSize:       vg.Points(12),
		LegendSize:     vg.Points(10),
		AnnotationSize: vg.Points(11),
	}
}

// Series is one drawn curve.
type Series struct {
	Galaxy string
	Kind   Kind
	Line   *plotter.Line
}

// Figure is the rendering target: the plot plus everything added to it.
type Figure struct {
	Plot        *plot.Plot
	Options     Options
	Series      []Series
	Annotations *plotter.Labels

	galaxies   *legendPanel
	components *legendPanel
}

// GalaxyLegend returns the entries of the galaxy legend, title first.
func (f *Figure) GalaxyLegend() []string {
	return append([]string{f.galaxies.title}, f.galaxies.entries...)
}

// ComponentLegend returns the entries of the component legend, title first.
func (f *Figure) ComponentLegend() []string {
	return append([]string{f.components.title}, f.components.entries...)
}

// Build lays out the curves of res into a new figure.
func Build(res *experiment.Result, opts Options) (*Figure, error) {
	if res == nil || len(res.Curves) == 0 {
		return nil, ErrNoData
	}
	if opts.XMin >= opts.XMax || opts.YMin >= opts.YMax {
		return nil, fmt.Errorf("chart: invalid axis bounds x=[%g,%g] y=[%g,%g]", opts.XMin, opts.XMax, opts.YMin, opts.YMax)
	}

	p := plot.New()
	applyTheme(p, opts)

	fig := &Figure{
		Plot:       p,
		Options:    opts,
		galaxies:   newLegendPanel("Galaxies", true, true, opts.Theme, opts.LegendSize),
		components: newLegendPanel("Components", false, false, opts.Theme, opts.LegendSize),
	}

	grid := plotter.NewGrid()
	grid.Vertical = gridLine(opts.Theme)
	grid.Horizontal = gridLine(opts.Theme)
	p.Add(grid)

	labelXYs := make(plotter.XYs, 0, len(res.Curves))
	labelText := make([]string, 0, len(res.Curves))
	labelColors := make([]color.Color, 0, len(res.Curves))

	for _, gc := range res.Curves {
		col, err := ParseColor(gc.Galaxy.Color, 1)
		if err != nil {
			return nil, fmt.Errorf("galaxy %s: %w", gc.Galaxy.Name, err)
		}

		curves := map[Kind]fdft.Curve{
			KindTotal:  gc.Total,
			KindNewton: gc.Newton,
			KindPsi:    gc.Psi,
		}
		for _, k := range Kinds {
			l, err := plotter.NewLine(xys(gc.Radii, curves[k]))
			if err != nil {
				return nil, fmt.Errorf("galaxy %s %s: %w", gc.Galaxy.Name, k, err)
			}
			l.LineStyle = Styles[k].LineStyle(col)
			p.Add(l)
			fig.Series = append(fig.Series, Series{Galaxy: gc.Galaxy.Name, Kind: k, Line: l})
		}

		fig.galaxies.add(gc.Galaxy.Name, swatch{draw.LineStyle{Color: col, Width: Styles[KindTotal].Width}})

		labelXYs = append(labelXYs, plotter.XY{X: gc.Galaxy.Label.X, Y: gc.Galaxy.Label.Y})
		labelText = append(labelText, gc.Galaxy.Name)
		labelColors = append(labelColors, col)
	}

	for _, k := range Kinds {
		s := Styles[k]
		fig.components.add(k.String(), swatch{draw.LineStyle{
			Color:  opts.Theme.Neutral,
			Width:  s.Width,
			Dashes: s.Dashes,
		}})
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelText})
	if err != nil {
		return nil, fmt.Errorf("chart: annotations: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = labelColors[i]
		labels.TextStyle[i].Font.Size = opts.AnnotationSize
	}
	p.Add(labels)
	fig.Annotations = labels

	p.Add(&frame{
		line:  draw.LineStyle{Color: opts.Theme.Foreground, Width: vg.Points(1)},
		major: vg.Points(3.5),
		minor: vg.Points(2),
	})
	p.Add(fig.galaxies, fig.components)

	// p.Add widens the axes to the data range; pin them afterwards.
	p.X.Min, p.X.Max = opts.XMin, opts.XMax
	p.Y.Min, p.Y.Max = opts.YMin, opts.YMax

	return fig, nil
}

func applyTheme(p *plot.Plot, opts Options) {
	fg := opts.Theme.Foreground

	p.BackgroundColor = opts.Theme.Background
	p.Title.Text = opts.Title
	p.Title.Padding = vg.Points(12)
	p.Title.TextStyle.Color = fg
	p.Title.TextStyle.Font.Size = opts.TitleSize

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Padding = 0
		ax.LineStyle.Color = fg
		ax.LineStyle.Width = vg.Points(1)
		ax.Label.TextStyle.Color = fg
		ax.Label.TextStyle.Font.Size = opts.LabelSize
		ax.Tick.Label.Color = fg
		ax.Tick.Label.Font.Size = opts.TickSize
		ax.Tick.Length = 0
	}
	if opts.XStep > 0 {
		p.X.Tick.Marker = stepTicks{Step: opts.XStep, Minor: opts.MinorTicks}
	}
	if opts.YStep > 0 {
		p.Y.Tick.Marker = stepTicks{Step: opts.YStep, Minor: opts.MinorTicks}
	}
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
}

func gridLine(t Theme) draw.LineStyle {
	return draw.LineStyle{
		Color:  t.Grid,
		Width:  vg.Points(0.8),
		Dashes: []vg.Length{vg.Points(3), vg.Points(1.5)},
	}
}

func xys(x, y fdft.Curve) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
