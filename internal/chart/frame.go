package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// frame draws the four spines of the data area and inward-facing major and
// minor ticks on every side. Axis ticks drawn by gonum are disabled.
type frame struct {
	line  draw.LineStyle
	major vg.Length
	minor vg.Length
}

func (f *frame) Plot(c draw.Canvas, p *plot.Plot) {
	minX, maxX := c.Min.X, c.Max.X
	minY, maxY := c.Min.Y, c.Max.Y

	for _, tk := range p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max) {
		if tk.Value < p.X.Min || tk.Value > p.X.Max {
			continue
		}
		x := c.X(p.X.Norm(tk.Value))
		l := f.length(tk)
		c.StrokeLine2(f.line, x, minY, x, minY+l)
		c.StrokeLine2(f.line, x, maxY, x, maxY-l)
	}
	for _, tk := range p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max) {
		if tk.Value < p.Y.Min || tk.Value > p.Y.Max {
			continue
		}
		y := c.Y(p.Y.Norm(tk.Value))
		l := f.length(tk)
		c.StrokeLine2(f.line, minX, y, minX+l, y)
		c.StrokeLine2(f.line, maxX, y, maxX-l, y)
	}

	c.StrokeLines(f.line, []vg.Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
		{X: minX, Y: minY},
	})
}

func (f *frame) length(tk plot.Tick) vg.Length {
	if tk.IsMinor() {
		return f.minor
	}
	return f.major
}

// legendPanel draws a legend inside the data area. Several panels can be
// added to one plot, unlike plot.Plot.Legend.
type legendPanel struct {
	title   string
	entries []string
	legend  plot.Legend
}

func newLegendPanel(title string, top, left bool, theme Theme, size vg.Length) *legendPanel {
	l := plot.NewLegend()
	l.Top = top
	l.Left = left
	l.TextStyle.Color = theme.LegendText
	l.TextStyle.Font.Size = size
	l.ThumbnailWidth = vg.Points(24)
	l.Padding = vg.Points(2)

	inset := vg.Points(8)
	if left {
		l.XOffs = inset
	} else {
		l.XOffs = -inset
	}
	if top {
		l.YOffs = -inset
	} else {
		l.YOffs = inset
	}

	lp := &legendPanel{title: title, legend: l}
	if title != "" {
		lp.legend.Add(title)
	}
	return lp
}

func (lp *legendPanel) add(name string, thumb plot.Thumbnailer) {
	lp.entries = append(lp.entries, name)
	lp.legend.Add(name, thumb)
}

func (lp *legendPanel) Plot(c draw.Canvas, _ *plot.Plot) {
	lp.legend.Draw(c)
}
