// Package fdft evaluates the FDFT rotation curve model.
//
// The model composes two circular-velocity contributions in quadrature:
//
//   - [Newton]: classical term sqrt(G*M/r)
//   - [Psi]: field term sqrt((kappa*C²*r/2) * (1 - exp(-r/lambda)))
//   - [Total]: sqrt(newton² + psi²)
//
// Radii are in kpc, masses in solar masses and velocities in km/s.
//
// # Example
//
//	r, _ := fdft.DefaultGrid()
//	c, err := fdft.Evaluate(r, fdft.Params{Mass: 3e8, Kappa: 0.03, Lambda: 1.5})
//	if err != nil {
//	    // errors.Is(err, fdft.ErrDomain) for bad radii
//	}
//
// # Domain
//
// [Evaluate] rejects non-positive or non-finite radii with [ErrDomain] and
// out-of-range parameters with [ErrParameterBounds]. It never returns NaN.
package fdft
