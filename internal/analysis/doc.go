// Package analysis provides diagnostics for evaluated rotation curves.
//
//   - [Summarize]: peak velocity, crossover radius and outer slope
//   - [Crossover]: radius where the field term overtakes the Newtonian one
//   - [LogSlope]: logarithmic slope of a curve's outer tail
//
// # Flatness
//
// The outer slope separates Keplerian decline from flat or rising curves:
//
//	s := analysis.Summarize(c)
//	if s.OuterSlope > -0.1 {
//	    // flat or rising
//	}
package analysis
