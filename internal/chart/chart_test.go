package chart_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/rotcurve/internal/chart"
	"github.com/san-kum/rotcurve/internal/experiment"
)

var _ = Describe("Build", func() {
	var res *experiment.Result

	BeforeEach(func() {
		var err error
		res, err = experiment.Default(context.Background())
		Expect(err).NotTo(HaveOccurred())
	})

	It("draws three series per galaxy in table order", func() {
		fig, err := chart.Build(res, chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Series).To(HaveLen(9))

		Expect(fig.Series[0].Galaxy).To(Equal("DF44"))
		Expect(fig.Series[3].Galaxy).To(Equal("NGC 1277"))
		Expect(fig.Series[6].Galaxy).To(Equal("Milky Way"))
		for i, s := range fig.Series {
			Expect(s.Kind).To(Equal(chart.Kinds[i%3]))
		}
	})

	It("styles each series by kind and colors it by galaxy", func() {
		fig, err := chart.Build(res, chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		total, newton, psi := fig.Series[3].Line, fig.Series[4].Line, fig.Series[5].Line
		Expect(total.LineStyle.Width).To(Equal(vg.Points(2.8)))
		Expect(total.LineStyle.Dashes).To(BeEmpty())
		Expect(newton.LineStyle.Width).To(Equal(vg.Points(1.3)))
		Expect(newton.LineStyle.Dashes).NotTo(BeEmpty())
		Expect(psi.LineStyle.Width).To(Equal(vg.Points(1.6)))
		Expect(psi.LineStyle.Dashes).NotTo(BeEmpty())

		c := total.LineStyle.Color.(color.NRGBA)
		Expect([]uint8{c.R, c.G, c.B}).To(Equal([]uint8{0xff, 0x6b, 0x6b}))
	})

	It("carries two independent legends", func() {
		fig, err := chart.Build(res, chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(fig.GalaxyLegend()).To(Equal([]string{"Galaxies", "DF44", "NGC 1277", "Milky Way"}))
		Expect(fig.ComponentLegend()).To(Equal([]string{"Components", "total", "Newtonian", "Ψ-field"}))
	})

	It("annotates each galaxy at its label position in its color", func() {
		fig, err := chart.Build(res, chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(fig.Annotations.Labels).To(Equal([]string{"DF44", "NGC 1277", "Milky Way"}))
		Expect(fig.Annotations.XYs[1].X).To(Equal(41.0))
		Expect(fig.Annotations.XYs[1].Y).To(Equal(270.0))
		Expect(fig.Annotations.TextStyle[2].Color).To(Equal(color.NRGBA{R: 0x69, G: 0xdb, B: 0x7c, A: 0xff}))
	})

	It("pins the axes to the configured bounds", func() {
		fig, err := chart.Build(res, chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(fig.Plot.X.Min).To(Equal(0.0))
		Expect(fig.Plot.X.Max).To(Equal(50.0))
		Expect(fig.Plot.Y.Min).To(Equal(0.0))
		Expect(fig.Plot.Y.Max).To(Equal(340.0))
		Expect(fig.Plot.Title.Text).To(Equal("Galactic Rotation Curves in FDFT"))
	})

	It("labels every 10 kpc and every 50 km/s with integers", func() {
		fig, err := chart.Build(res, chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		labels := func(ticks []plot.Tick) (major []string, minor int) {
			for _, tk := range ticks {
				if tk.IsMinor() {
					minor++
					continue
				}
				major = append(major, tk.Label)
			}
			return major, minor
		}

		x, xMinor := labels(fig.Plot.X.Tick.Marker.Ticks(fig.Plot.X.Min, fig.Plot.X.Max))
		Expect(x).To(Equal([]string{"0", "10", "20", "30", "40", "50"}))
		Expect(xMinor).To(Equal(20))

		y, yMinor := labels(fig.Plot.Y.Tick.Marker.Ticks(fig.Plot.Y.Min, fig.Plot.Y.Max))
		Expect(y).To(Equal([]string{"0", "50", "100", "150", "200", "250", "300"}))
		Expect(yMinor).To(Equal(28))
	})

	It("keeps gonum's ticker when no step is set", func() {
		opts := chart.DefaultOptions()
		opts.XStep, opts.YStep = 0, 0
		fig, err := chart.Build(res, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Plot.X.Tick.Marker).To(BeAssignableToTypeOf(plot.DefaultTicks{}))
	})

	It("rejects empty results and bad colors", func() {
		_, err := chart.Build(&experiment.Result{}, chart.DefaultOptions())
		Expect(errors.Is(err, chart.ErrNoData)).To(BeTrue())

		res.Curves[0].Galaxy.Color = "blue-ish"
		_, err = chart.Build(res, chart.DefaultOptions())
		Expect(err).To(MatchError(ContainSubstring("DF44")))
	})

	It("rejects inverted axis bounds", func() {
		opts := chart.DefaultOptions()
		opts.YMax = -1
		_, err := chart.Build(res, opts)
		Expect(err).To(MatchError(ContainSubstring("invalid axis bounds")))
	})
})

var _ = Describe("Save", func() {
	var (
		res *experiment.Result
		dir string
	)

	BeforeEach(func() {
		var err error
		res, err = experiment.Default(context.Background())
		Expect(err).NotTo(HaveOccurred())
		dir = GinkgoT().TempDir()
	})

	It("writes a PNG with the figure's pixel dimensions", func() {
		opts := chart.DefaultOptions()
		opts.DPI = 40
		path := filepath.Join(dir, chart.DefaultOutput)

		_, err := chart.Save(path, res, opts)
		Expect(err).NotTo(HaveOccurred())

		f, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		cfg, format, err := image.DecodeConfig(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(format).To(Equal("png"))
		Expect(cfg.Width).To(Equal(380))
		Expect(cfg.Height).To(Equal(260))
	})

	It("fills the background with the theme color", func() {
		opts := chart.DefaultOptions()
		opts.DPI = 20
		fig, err := chart.Build(res, opts)
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		Expect(fig.Render(&buf, "png")).To(Succeed())

		img, _, err := image.Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		r, g, b, _ := img.At(0, 0).RGBA()
		Expect([]uint32{r, g, b}).To(Equal([]uint32{0, 0, 0}))
	})

	It("renders vector formats", func() {
		fig, err := chart.Build(res, chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		Expect(fig.Render(&buf, "svg")).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("<svg"))
	})

	It("fails on unknown formats without leaving a file", func() {
		path := filepath.Join(dir, "figure.bmp")
		_, err := chart.Save(path, res, chart.DefaultOptions())
		Expect(errors.Is(err, chart.ErrFormat)).To(BeTrue())
		Expect(path).NotTo(BeAnExistingFile())
	})

	It("fails on unwritable paths", func() {
		path := filepath.Join(dir, "missing", "figure.png")
		_, err := chart.Save(path, res, chart.DefaultOptions())
		Expect(err).To(MatchError(ContainSubstring("create output")))
	})
})

var _ = Describe("Theme", func() {
	It("falls back to dark for unknown names", func() {
		Expect(chart.GetTheme("neon").Name).To(Equal("dark"))
		Expect(chart.GetTheme("light").Name).To(Equal("light"))
		Expect(chart.ThemeNames()).To(ConsistOf("dark", "light"))
	})

	It("parses hex tokens with opacity", func() {
		c, err := chart.ParseColor("#4dabf7", 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(color.NRGBA{R: 0x4d, G: 0xab, B: 0xf7, A: 128}))

		_, err = chart.ParseColor("not-a-color", 1)
		Expect(err).To(HaveOccurred())
	})

	It("derives the format from the file extension", func() {
		Expect(chart.FormatFromPath("out.PNG")).To(Equal("png"))
		Expect(chart.FormatFromPath("out.svg")).To(Equal("svg"))
		Expect(chart.FormatFromPath("out")).To(Equal("png"))
		Expect(chart.Supported("bmp")).To(BeFalse())
	})
})
