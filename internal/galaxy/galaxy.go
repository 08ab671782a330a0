// Package galaxy holds the galaxy table the rotation curves are drawn for.
package galaxy

import "github.com/san-kum/rotcurve/internal/fdft"

// Galaxy pairs model parameters with display metadata.
type Galaxy struct {
	Name   string
	Color  string // hex color token, e.g. "#4dabf7"
	Params fdft.Params
	Label  Annotation
}

// Annotation is the chart position of the galaxy's name, in data coordinates.
type Annotation struct {
	X float64
	Y float64
}

// Section6 returns the rotation-curve figure's galaxy table in drawing order.
func Section6() []Galaxy {
	return []Galaxy{
		{
			Name:   "DF44",
			Color:  "#4dabf7",
			Params: fdft.Params{Mass: 3e8, Kappa: 0.03, Lambda: 1.5},
			Label:  Annotation{X: 41, Y: 60},
		},
		{
			Name:   "NGC 1277",
			Color:  "#ff6b6b",
			Params: fdft.Params{Mass: 1.2e11, Kappa: 0.10, Lambda: 1.5},
			Label:  Annotation{X: 41, Y: 270},
		},
		{
			Name:   "Milky Way",
			Color:  "#69db7c",
			Params: fdft.Params{Mass: 6e10, Kappa: 0.08, Lambda: 1.5},
			Label:  Annotation{X: 41, Y: 170},
		},
	}
}

// DefaultCatalog wraps Section6 in a Catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(Section6()...)
	if err != nil {
		panic(err)
	}
	return c
}
