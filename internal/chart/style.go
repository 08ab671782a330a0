package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Kind identifies one of the three curves drawn per galaxy.
type Kind int

const (
	KindTotal Kind = iota
	KindNewton
	KindPsi
)

// Kinds lists the curve kinds in drawing order.
var Kinds = []Kind{KindTotal, KindNewton, KindPsi}

func (k Kind) String() string {
	switch k {
	case KindTotal:
		return "total"
	case KindNewton:
		return "Newtonian"
	case KindPsi:
		return "Ψ-field"
	}
	return "unknown"
}

// SeriesStyle is the stroke used for one curve kind.
type SeriesStyle struct {
	Width  vg.Length
	Alpha  float64
	Dashes []vg.Length
}

// Styles maps each curve kind to its stroke: solid and thick for the total,
// dashed and thin for Newtonian, dotted and medium for the field term.
var Styles = map[Kind]SeriesStyle{
	KindTotal: {Width: vg.Points(2.8), Alpha: 0.95},
	KindNewton: {
		Width:  vg.Points(1.3),
		Alpha:  0.8,
		Dashes: []vg.Length{vg.Points(4.8), vg.Points(2.1)},
	},
	KindPsi: {
		Width:  vg.Points(1.6),
		Alpha:  0.95,
		Dashes: []vg.Length{vg.Points(1.6), vg.Points(2.6)},
	},
}

// LineStyle builds the stroke for kind k in color c.
func (s SeriesStyle) LineStyle(c color.Color) draw.LineStyle {
	var dashes []vg.Length
	if len(s.Dashes) > 0 {
		dashes = append(dashes, s.Dashes...)
	}
	return draw.LineStyle{
		Color:  withAlpha(c, s.Alpha),
		Width:  s.Width,
		Dashes: dashes,
	}
}

// swatch is a legend thumbnail: a horizontal stroke across the icon box.
type swatch struct {
	draw.LineStyle
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(s.LineStyle, c.Min.X, y, c.Max.X, y)
}
