package viz

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"

	"github.com/san-kum/rotcurve/internal/experiment"
	"github.com/san-kum/rotcurve/internal/fdft"
)

// PreviewOptions configures the terminal rendering of a result.
type PreviewOptions struct {
	Width  int
	Height int
	Kind   string // total, newton or psi
}

func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{Width: 80, Height: 15, Kind: "total"}
}

func pick(gc experiment.GalaxyCurves, kind string) (fdft.Curve, error) {
	switch kind {
	case "", "total":
		return gc.Total, nil
	case "newton":
		return gc.Newton, nil
	case "psi":
		return gc.Psi, nil
	}
	return nil, fmt.Errorf("viz: unknown curve kind %q", kind)
}

// Preview draws one curve per galaxy as an ASCII chart with a color legend.
func Preview(res *experiment.Result, opts PreviewOptions) (string, error) {
	if res == nil || len(res.Curves) == 0 {
		return "", fmt.Errorf("viz: nothing to preview")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultPreviewOptions().Width, DefaultPreviewOptions().Height
	}
	kind := opts.Kind
	if kind == "" {
		kind = "total"
	}

	series := make([][]float64, 0, len(res.Curves))
	colors := make([]asciigraph.AnsiColor, 0, len(res.Curves))
	for _, gc := range res.Curves {
		c, err := pick(gc, kind)
		if err != nil {
			return "", err
		}
		series = append(series, c)
		colors = append(colors, SeriesColor(gc.Galaxy.Color))
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("v_%s [km/s] over r = %.1f..%.1f kpc", kind, res.Radii[0], res.Radii[len(res.Radii)-1])),
	)

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("rotation curves"))
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	for _, gc := range res.Curves {
		sb.WriteString("  ")
		sb.WriteString(GalaxyStyle(gc.Galaxy.Color).Render("━━ " + gc.Galaxy.Name))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Show displays the preview on w when w is a terminal. It reports whether
// anything was shown; a missing display is not an error.
func Show(w io.Writer, res *experiment.Result, opts PreviewOptions) bool {
	if !IsTerminal(w) {
		return false
	}
	out, err := Preview(res, opts)
	if err != nil {
		return false
	}
	_, err = fmt.Fprintln(w, out)
	return err == nil
}
