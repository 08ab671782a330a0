package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/rotcurve/internal/fdft"
)

// OuterFraction is the share of the grid used for the outer-slope fit.
const OuterFraction = 0.1

// Summary condenses one galaxy's curve set.
type Summary struct {
	PeakTotal  float64 // km/s
	PeakRadius float64 // kpc
	Crossover  float64 // kpc, NaN if the field term never catches up
	OuterSlope float64 // d ln v_tot / d ln r over the outer tail
}

// Summarize computes the diagnostics for c. Empty input yields NaN fields.
func Summarize(c *fdft.Components) Summary {
	s := Summary{
		PeakTotal:  math.NaN(),
		PeakRadius: math.NaN(),
		Crossover:  math.NaN(),
		OuterSlope: math.NaN(),
	}
	if c == nil || c.Len() == 0 {
		return s
	}

	i := floats.MaxIdx(c.Total)
	s.PeakTotal = c.Total[i]
	s.PeakRadius = c.Radii[i]
	s.Crossover = Crossover(c.Radii, c.Newton, c.Psi)
	s.OuterSlope = LogSlope(c.Radii, c.Total, OuterFraction)
	return s
}

// Crossover returns the first radius where psi reaches newton, linearly
// interpolated between samples. It returns NaN if psi stays below newton.
func Crossover(r, newton, psi []float64) float64 {
	for i := range r {
		d := psi[i] - newton[i]
		if d < 0 {
			continue
		}
		if i == 0 {
			return r[0]
		}
		prev := psi[i-1] - newton[i-1]
		t := -prev / (d - prev)
		return r[i-1] + t*(r[i]-r[i-1])
	}
	return math.NaN()
}

// LogSlope fits ln v = a + b ln r over the last frac of the samples and
// returns b. A flat rotation curve has slope 0, a Keplerian one -0.5.
func LogSlope(r, v []float64, frac float64) float64 {
	n := int(math.Ceil(float64(len(r)) * frac))
	if n < 2 {
		n = 2
	}
	if n > len(r) {
		return math.NaN()
	}

	lr := make([]float64, n)
	lv := make([]float64, n)
	off := len(r) - n
	for i := 0; i < n; i++ {
		if r[off+i] <= 0 || v[off+i] <= 0 {
			return math.NaN()
		}
		lr[i] = math.Log(r[off+i])
		lv[i] = math.Log(v[off+i])
	}
	_, beta := stat.LinearRegression(lr, lv, nil, false)
	return beta
}
