package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/san-kum/rotcurve/internal/automation"
	"github.com/san-kum/rotcurve/internal/chart"
	"github.com/san-kum/rotcurve/internal/config"
	"github.com/san-kum/rotcurve/internal/experiment"
	"github.com/san-kum/rotcurve/internal/fdft"
	"github.com/san-kum/rotcurve/internal/galaxy"
	"github.com/san-kum/rotcurve/internal/logger"
	"github.com/san-kum/rotcurve/internal/storage"
	"github.com/san-kum/rotcurve/internal/viz"
)

var (
	dataDir    string
	debug      bool
	configFile string
	preset     string

	// chart output
	output  string
	dpi     int
	theme   string
	noShow  bool
	saveRun bool

	// eval
	radii    []float64
	only     []string
	summary  bool
	langName string

	// sweep
	sweepGalaxy string
	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	sweepRadius float64
	sweepLog    bool

	// plot
	kind string

	env config.Env
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "rotcurve",
		Short:             "galactic rotation curves in FDFT",
		Long:              "Evaluates the FDFT rotation-curve model for a table of galaxies and renders the chart.\nWith no subcommand it renders the default figure.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setup,
		RunE:              runRender,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rotcurve", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	addRenderFlags(rootCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "evaluate the galaxy table and save the chart",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	addRenderFlags(renderCmd)

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "print velocity components at chosen radii",
		Args:  cobra.NoArgs,
		RunE:  runEval,
	}
	evalCmd.Flags().Float64SliceVar(&radii, "radius", []float64{1, 5, 10, 20, 50}, "radii in kpc")
	evalCmd.Flags().StringSliceVar(&only, "galaxy", nil, "restrict to these galaxies")
	evalCmd.Flags().BoolVar(&summary, "summary", false, "print curve diagnostics instead")
	evalCmd.Flags().StringVar(&langName, "lang", "en", "number formatting language")

	sweepCmd := &cobra.Command{
		Use:   "sweep [file]",
		Short: "sweep one model parameter at a fixed radius",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepGalaxy, "galaxy", "DF44", "galaxy to sweep")
	sweepCmd.Flags().StringVar(&sweepParam, "param", "lambda", "parameter: mass, kappa or lambda")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 1, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1e4, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 20, "number of values")
	sweepCmd.Flags().Float64Var(&sweepRadius, "radius", 10, "radius in kpc")
	sweepCmd.Flags().BoolVar(&sweepLog, "log", true, "logarithmic spacing")

	galaxiesCmd := &cobra.Command{
		Use:   "galaxies",
		Short: "list the configured galaxy table",
		Args:  cobra.NoArgs,
		RunE:  listGalaxies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&kind, "kind", "total", "curve: total, newton or psi")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run curves to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	rootCmd.AddCommand(renderCmd, evalCmd, sweepCmd, galaxiesCmd, presetsCmd, listCmd, plotCmd, exportCmd, exportCSVCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "rotcurve: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&output, "output", "o", chart.DefaultOutput, "output image (png, jpg, tif, svg, pdf, eps)")
	cmd.Flags().IntVar(&dpi, "dpi", config.DefaultDPI, "raster resolution")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "chart theme: "+strings.Join(chart.ThemeNames(), ", "))
	cmd.Flags().BoolVar(&noShow, "no-show", false, "skip the terminal preview")
	cmd.Flags().BoolVar(&saveRun, "save", false, "store the evaluated curves under --data")
}

// setup reads the environment and installs the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	env, err = config.ParseEnv()
	if err != nil {
		return err
	}
	if env.Data != "" && !cmd.Flags().Changed("data") {
		dataDir = env.Data
	}
	logger.Setup(os.Stderr, logger.Config{Debug: debug || env.Debug})
	return nil
}

// resolveConfig layers defaults, preset, config file, environment and
// explicit flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	label := "section6"

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		label = preset
	}

	if configFile != "" {
		loaded, err := config.LoadWith(configFile, cfg)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		label = strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))
	}

	env.Apply(cfg)

	flags := cmd.Flags()
	if flags.Lookup("output") != nil {
		if flags.Changed("output") {
			cfg.Output.Path = output
		}
		if flags.Changed("dpi") {
			cfg.Output.DPI = dpi
		}
		if flags.Changed("theme") {
			cfg.Theme = theme
		}
		if noShow {
			cfg.Output.Show = false
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	slog.Debug("config.resolved", "label", label, "output", cfg.Output.Path, "dpi", cfg.Output.DPI, "theme", cfg.Theme, "galaxies", len(cfg.Galaxies))
	return cfg, label, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, label, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := experiment.Run(cmd.Context(), cfg.ToExperiment())
	if err != nil {
		return err
	}
	slog.Debug("curves.evaluated", "galaxies", len(res.Curves), "samples", len(res.Radii))

	fig, err := chart.Save(cfg.Output.Path, res, cfg.ChartOptions())
	if err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	slog.Info("chart.saved", "path", cfg.Output.Path, "dpi", cfg.Output.DPI, "series", len(fig.Series))
	fmt.Printf("saved %s\n", cfg.Output.Path)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Label:  label,
			Output: cfg.Output.Path,
			DPI:    cfg.Output.DPI,
			Theme:  cfg.Theme,
		}, res)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Printf("run: %s\n", runID)
	}

	if cfg.Output.Show && !viz.Show(os.Stdout, res, viz.DefaultPreviewOptions()) {
		slog.Debug("display.skipped", "reason", "stdout is not a terminal")
	}
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	tag, err := language.Parse(langName)
	if err != nil {
		return fmt.Errorf("invalid --lang: %w", err)
	}

	cat, err := galaxy.NewCatalog(cfg.GetGalaxies()...)
	if err != nil {
		return err
	}
	selected := cat.All()
	if len(only) > 0 {
		selected = selected[:0]
		for _, name := range only {
			g, err := cat.Get(name)
			if err != nil {
				return err
			}
			selected = append(selected, g)
		}
	}

	if summary {
		res, err := experiment.Run(cmd.Context(), experiment.Config{
			Grid:     cfg.ToExperiment().Grid,
			Galaxies: selected,
		})
		if err != nil {
			return err
		}
		return viz.WriteSummary(os.Stdout, res, tag)
	}

	for i, g := range selected {
		c, err := fdft.Evaluate(radii, g.Params)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", g.Name, err)
		}
		if i > 0 {
			fmt.Println()
		}
		if err := viz.WriteTable(os.Stdout, g.Name, c.Radii, c.Total, c.Newton, c.Psi, tag); err != nil {
			return err
		}
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := galaxy.NewCatalog(cfg.GetGalaxies()...)
	if err != nil {
		return err
	}

	var s *automation.Sweep
	if len(args) == 1 {
		s, err = automation.LoadSweep(args[0], cat)
		if err != nil {
			return fmt.Errorf("failed to load sweep: %w", err)
		}
	} else {
		g, err := cat.Get(sweepGalaxy)
		if err != nil {
			return err
		}
		s = &automation.Sweep{
			Galaxy: g,
			Param:  sweepParam,
			Min:    sweepMin,
			Max:    sweepMax,
			Steps:  sweepSteps,
			Radius: sweepRadius,
			Log:    sweepLog,
		}
	}

	results, err := automation.RunSweep(cmd.Context(), s)
	if err != nil {
		return err
	}

	fmt.Printf("galaxy: %s\n", s.Galaxy.Name)
	fmt.Printf("radius: %g kpc\n\n", s.Radius)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tV_TOT\tV_NEWTON\tV_PSI\n", strings.ToUpper(s.Param))
	totals := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%.4g\t%.4f\t%.4f\t%.4f\n", r.Value, r.Total, r.Newton, r.Psi)
		totals[i] = r.Total
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(totals,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("v_total at r = %g kpc vs %s", s.Radius, s.Param)),
	))
	return nil
}

func listGalaxies(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render("galaxies"))
	for _, g := range cfg.GetGalaxies() {
		fmt.Printf("%s  %s %s  %s %s  %s %s\n",
			viz.GalaxyStyle(g.Color).Render(fmt.Sprintf("%-10s", g.Name)),
			viz.MetricLabel.Render("mass"), viz.MetricValue.Render(fmt.Sprintf("%.3g", g.Params.Mass)),
			viz.MetricLabel.Render("kappa"), viz.MetricValue.Render(fmt.Sprintf("%.3f", g.Params.Kappa)),
			viz.MetricLabel.Render("lambda"), viz.MetricValue.Render(fmt.Sprintf("%.2f", g.Params.Lambda)),
		)
	}
	fmt.Println(viz.Separator(48))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tGALAXIES\tSAMPLES\tOUTPUT")

	for _, run := range runs {
		names := make([]string, len(run.Galaxies))
		for i, g := range run.Galaxies {
			names[i] = g.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			strings.Join(names, ", "),
			run.Grid.Samples,
			run.Output,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("samples: %d\n\n", len(res.Radii))

	opts := viz.DefaultPreviewOptions()
	opts.Kind = kind
	out, err := viz.Preview(res, opts)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, err := st.LoadCurves(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, res)
}
