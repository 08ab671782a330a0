package fdft

import (
	"fmt"
	"math"
)

// Curve is a sampled sequence indexed like the radius grid.
type Curve []float64

func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

func (c Curve) IsValid() bool {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Max returns the largest sample and its index, or (NaN, -1) for an empty curve.
func (c Curve) Max() (float64, int) {
	if len(c) == 0 {
		return math.NaN(), -1
	}
	best, idx := c[0], 0
	for i, v := range c {
		if v > best {
			best, idx = v, i
		}
	}
	return best, idx
}

// Equal reports bitwise equality of two curves.
func (c Curve) Equal(other Curve) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if math.Float64bits(c[i]) != math.Float64bits(other[i]) {
			return false
		}
	}
	return true
}

// Params are the per-galaxy model inputs.
type Params struct {
	Mass   float64 `json:"mass" yaml:"mass"`     // baryonic mass, M☉
	Kappa  float64 `json:"kappa" yaml:"kappa"`   // dimensionless coupling
	Lambda float64 `json:"lambda" yaml:"lambda"` // saturation length, kpc
}

func (p Params) Validate() error {
	switch {
	case !(p.Mass > 0) || math.IsInf(p.Mass, 0):
		return &ParamError{Name: "mass", Value: p.Mass}
	case !(p.Kappa >= 0) || math.IsInf(p.Kappa, 0):
		return &ParamError{Name: "kappa", Value: p.Kappa}
	case !(p.Lambda > 0) || math.IsInf(p.Lambda, 0):
		return &ParamError{Name: "lambda", Value: p.Lambda}
	}
	return nil
}

func (p Params) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":   p.Mass,
		"kappa":  p.Kappa,
		"lambda": p.Lambda,
	}
}

func (p *Params) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		p.Mass = value
	case "kappa":
		p.Kappa = value
	case "lambda":
		p.Lambda = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

// Components is one velocity curve set: three parallel curves sampled on Radii.
type Components struct {
	Radii  Curve
	Total  Curve
	Newton Curve
	Psi    Curve
}

func (c *Components) Len() int {
	return len(c.Radii)
}

// Equal reports whether both sets hold bitwise identical samples.
func (c *Components) Equal(other *Components) bool {
	return c.Radii.Equal(other.Radii) &&
		c.Total.Equal(other.Total) &&
		c.Newton.Equal(other.Newton) &&
		c.Psi.Equal(other.Psi)
}
