package fdft

import "math"

const (
	// G is the gravitational constant in kpc·(km/s)²/M☉.
	G = 4.302e-6

	// C is the field velocity scale in km/s. It enters the Ψ term squared.
	C = 3.0e5
)

// Newton returns the Newtonian circular velocity at radius r.
func Newton(r, mass float64) float64 {
	return math.Sqrt(G * mass / r)
}

// Psi returns the field-induced velocity at radius r.
func Psi(r, kappa, lambda float64) float64 {
	return math.Sqrt((kappa * (C * C) * r / 2.0) * (1.0 - math.Exp(-r/lambda)))
}

// Total composes the two contributions in quadrature.
func Total(newton, psi float64) float64 {
	return math.Sqrt(newton*newton + psi*psi)
}

// VelocityAt evaluates the model at a single radius.
func VelocityAt(r float64, p Params) (total, newton, psi float64, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, 0, err
	}
	if !validRadius(r) {
		return 0, 0, 0, &DomainError{Index: 0, Radius: r}
	}
	newton = Newton(r, p.Mass)
	psi = Psi(r, p.Kappa, p.Lambda)
	return Total(newton, psi), newton, psi, nil
}

// Evaluate computes the three velocity curves over r. The input slice is
// copied into the result and never modified.
func Evaluate(r []float64, p Params) (*Components, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, v := range r {
		if !validRadius(v) {
			return nil, &DomainError{Index: i, Radius: v}
		}
	}

	n := len(r)
	c := &Components{
		Radii:  Curve(r).Clone(),
		Total:  make(Curve, n),
		Newton: make(Curve, n),
		Psi:    make(Curve, n),
	}
	for i, ri := range r {
		vn := Newton(ri, p.Mass)
		vp := Psi(ri, p.Kappa, p.Lambda)
		c.Newton[i] = vn
		c.Psi[i] = vp
		c.Total[i] = Total(vn, vp)
	}
	return c, nil
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 1)
}
