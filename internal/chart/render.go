package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/rotcurve/internal/experiment"
)

// DefaultOutput is where the figure is written when no path is configured.
const DefaultOutput = "section6_fdft_rotation_curves_dark.png"

var ErrFormat = errors.New("chart: unsupported output format")

// FormatFromPath returns the image format implied by the file extension.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "png"
	}
	return strings.ToLower(ext)
}

// Supported reports whether format can be rendered.
func Supported(format string) bool {
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps", "tex":
		return true
	}
	return false
}

func (f *Figure) canvas(format string) (vg.CanvasWriterTo, error) {
	opts := f.Options
	img := func() *vgimg.Canvas {
		return vgimg.NewWith(
			vgimg.UseWH(opts.Width, opts.Height),
			vgimg.UseDPI(opts.DPI),
			vgimg.UseBackgroundColor(opts.Theme.Background),
		)
	}

	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: img()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: img()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: img()}, nil
	}
	c, err := draw.NewFormattedCanvas(opts.Width, opts.Height, format)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	return c, nil
}

// Render draws the figure and encodes it to w in the given format.
func (f *Figure) Render(w io.Writer, format string) error {
	if f.Options.DPI <= 0 {
		return fmt.Errorf("chart: invalid dpi %d", f.Options.DPI)
	}
	if !Supported(format) {
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	c, err := f.canvas(format)
	if err != nil {
		return err
	}
	f.Plot.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("chart: encode %s: %w", format, err)
	}
	return nil
}

// Save writes the figure to path. A partially written file is removed.
func (f *Figure) Save(path string) (err error) {
	format := FormatFromPath(path)
	if !Supported(format) {
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("chart: close output: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return f.Render(out, format)
}

// Save builds the figure for res and writes it to path.
func Save(path string, res *experiment.Result, opts Options) (*Figure, error) {
	fig, err := Build(res, opts)
	if err != nil {
		return nil, err
	}
	if err := fig.Save(path); err != nil {
		return nil, err
	}
	return fig, nil
}
