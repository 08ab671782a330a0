package chart

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the color scheme of a rendered figure
type Theme struct {
	Name       string
	Background color.Color
	Foreground color.Color // axes, frame, tick labels, title
	Neutral    color.Color // swatches in the components legend
	Grid       color.Color
	LegendText color.Color
}

// Available themes
var (
	ThemeDark = Theme{
		Name:       "dark",
		Background: color.Black,
		Foreground: color.White,
		Neutral:    color.White,
		Grid:       color.NRGBA{R: 255, G: 255, B: 255, A: 77}, // white, alpha 0.3
		LegendText: color.White,
	}

	ThemeLight = Theme{
		Name:       "light",
		Background: color.White,
		Foreground: color.Black,
		Neutral:    color.Black,
		Grid:       color.NRGBA{R: 0, G: 0, B: 0, A: 77},
		LegendText: color.Black,
	}

	// All available themes
	Themes = []Theme{
		ThemeDark,
		ThemeLight,
	}
)

// GetTheme returns a theme by name, falling back to dark
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// ParseColor turns a hex token such as "#4dabf7" into a color with the given opacity.
func ParseColor(hex string, alpha float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("chart: color %q: %w", hex, err)
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}, nil
}

func withAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(alpha*255 + 0.5)
	return n
}
