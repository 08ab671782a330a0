package fdft

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	DefaultRMin    = 0.5
	DefaultRMax    = 50.0
	DefaultSamples = 600
)

// Grid returns n evenly spaced radii covering [min, max] inclusive.
func Grid(min, max float64, n int) (Curve, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrGrid, n)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite", ErrGrid)
	}
	if min >= max {
		return nil, fmt.Errorf("%w: min %g >= max %g", ErrGrid, min, max)
	}
	return Curve(floats.Span(make([]float64, n), min, max)), nil
}

// DefaultGrid is the 0.5–50 kpc grid with 600 samples.
func DefaultGrid() (Curve, error) {
	return Grid(DefaultRMin, DefaultRMax, DefaultSamples)
}
