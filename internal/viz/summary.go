package viz

import (
	"io"
	"math"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/rotcurve/internal/analysis"
	"github.com/san-kum/rotcurve/internal/experiment"
)

// WriteSummary prints per-galaxy diagnostics as an aligned table. Numbers
// are grouped according to tag.
func WriteSummary(w io.Writer, res *experiment.Result, tag language.Tag) error {
	p := message.NewPrinter(tag)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintln(tw, "GALAXY\tMASS [Msun]\tKAPPA\tLAMBDA [kpc]\tPEAK [km/s]\tAT [kpc]\tCROSSOVER [kpc]\tOUTER SLOPE")
	for _, gc := range res.Curves {
		s := analysis.Summarize(gc.Components)
		pp := gc.Galaxy.Params
		p.Fprintf(tw, "%s\t%.3g\t%.3f\t%.2f\t%.1f\t%.2f\t%s\t%.3f\n",
			gc.Galaxy.Name,
			pp.Mass,
			pp.Kappa,
			pp.Lambda,
			s.PeakTotal,
			s.PeakRadius,
			orDash(p, s.Crossover),
			s.OuterSlope,
		)
	}
	return tw.Flush()
}

// WriteTable prints the three velocity components at the given radii.
func WriteTable(w io.Writer, name string, radii, total, newton, psi []float64, tag language.Tag) error {
	p := message.NewPrinter(tag)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "%s\n", name)
	p.Fprintln(tw, "R [kpc]\tV_TOT [km/s]\tV_NEWTON [km/s]\tV_PSI [km/s]")
	for i := range radii {
		p.Fprintf(tw, "%.3f\t%.4f\t%.4f\t%.4f\n", radii[i], total[i], newton[i], psi[i])
	}
	return tw.Flush()
}

func orDash(p *message.Printer, v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return p.Sprintf("%.2f", v)
}
