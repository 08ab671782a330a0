// Package chart renders rotation curves to a static image with gonum/plot.
//
// A [Figure] holds, per galaxy, three overlaid series styled by [Kind]:
//
//   - total: solid, thick
//   - Newtonian: dashed, thin
//   - Ψ-field: dotted, medium
//
// plus a "Galaxies" legend (top left), a "Components" legend (bottom
// right), one colored name annotation per galaxy and a framed data area
// with inward ticks on all four sides.
//
// # Output
//
// Raster formats (png, jpg, tif) are rendered at [Options].DPI; vector
// formats (svg, pdf, eps) ignore it:
//
//	fig, err := chart.Build(res, chart.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	return fig.Save(chart.DefaultOutput)
package chart
