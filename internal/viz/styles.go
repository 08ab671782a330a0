package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Header with decorative line
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// Metric value style
	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	// Metric label style
	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	// Subtle muted text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))
)

// GalaxyStyle renders text in a galaxy's hex color.
func GalaxyStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex))
}

// Separator draws a decorative rule.
func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

// terminal colors asciigraph can draw with, keyed by their CSS hex value
var seriesPalette = []struct {
	hex   string
	color asciigraph.AnsiColor
}{
	{"#0000ff", asciigraph.Blue},
	{"#ff0000", asciigraph.Red},
	{"#008000", asciigraph.Green},
	{"#ffff00", asciigraph.Yellow},
	{"#00ffff", asciigraph.Cyan},
	{"#ff00ff", asciigraph.Magenta},
}

// SeriesColor picks the terminal color closest to hex in Lab space.
func SeriesColor(hex string) asciigraph.AnsiColor {
	c, err := colorful.Hex(hex)
	if err != nil {
		return asciigraph.Default
	}
	best, bestDist := asciigraph.Default, -1.0
	for _, p := range seriesPalette {
		pc, _ := colorful.Hex(p.hex)
		d := c.DistanceLab(pc)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.color, d
		}
	}
	return best
}
