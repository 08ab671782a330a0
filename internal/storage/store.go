package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/rotcurve/internal/analysis"
	"github.com/san-kum/rotcurve/internal/experiment"
	"github.com/san-kum/rotcurve/internal/fdft"
	"github.com/san-kum/rotcurve/internal/galaxy"
)

const (
	metadataFile = "metadata.json"
	curvesFile   = "curves.csv"
)

var (
	ErrEmptyRun = errors.New("storage: run has no curves")
	ErrShape    = errors.New("storage: ragged curves")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type GalaxyMetadata struct {
	Name   string      `json:"name"`
	Color  string      `json:"color"`
	Params fdft.Params `json:"params"`
	LabelX float64     `json:"label_x"`
	LabelY float64     `json:"label_y"`
}

type RunMetadata struct {
	ID        string              `json:"id"`
	Label     string              `json:"label"`
	Timestamp time.Time           `json:"timestamp"`
	Output    string              `json:"output,omitempty"`
	DPI       int                 `json:"dpi,omitempty"`
	Theme     string              `json:"theme,omitempty"`
	Grid      experiment.GridSpec `json:"grid"`
	Galaxies  []GalaxyMetadata    `json:"galaxies"`
	Metrics   map[string]float64  `json:"metrics"`
}

// Save writes one run directory holding metadata.json and curves.csv. The
// caller fills Label, Output, DPI and Theme; everything else is derived
// from res.
func (s *Store) Save(meta RunMetadata, res *experiment.Result) (_ string, err error) {
	if res == nil || len(res.Curves) == 0 {
		return "", ErrEmptyRun
	}
	if meta.Label == "" {
		meta.Label = "run"
	}

	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Label, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta.ID = runID
	meta.Timestamp = now
	meta.Grid = experiment.GridSpec{
		Min:     res.Radii[0],
		Max:     res.Radii[len(res.Radii)-1],
		Samples: len(res.Radii),
	}
	meta.Galaxies = make([]GalaxyMetadata, 0, len(res.Curves))
	meta.Metrics = make(map[string]float64)
	for _, gc := range res.Curves {
		g := gc.Galaxy
		meta.Galaxies = append(meta.Galaxies, GalaxyMetadata{
			Name:   g.Name,
			Color:  g.Color,
			Params: g.Params,
			LabelX: g.Label.X,
			LabelY: g.Label.Y,
		})
		sum := analysis.Summarize(gc.Components)
		putMetric(meta.Metrics, g.Name+":peak_total", sum.PeakTotal)
		putMetric(meta.Metrics, g.Name+":peak_radius", sum.PeakRadius)
		putMetric(meta.Metrics, g.Name+":crossover", sum.Crossover)
		putMetric(meta.Metrics, g.Name+":outer_slope", sum.OuterSlope)
	}

	err = writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}
	err = writeFile(filepath.Join(runDir, curvesFile), func(w io.Writer) error {
		return WriteCSV(w, res)
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}

// json has no encoding for NaN
func putMetric(m map[string]float64, key string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	m[key] = v
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()

	return write(f)
}

// WriteCSV writes res as one radius column followed by total, newton and
// psi columns per galaxy.
func WriteCSV(out io.Writer, res *experiment.Result) error {
	for _, gc := range res.Curves {
		n := len(res.Radii)
		if len(gc.Total) != n || len(gc.Newton) != n || len(gc.Psi) != n {
			return fmt.Errorf("%w: %s curves do not match %d radii", ErrShape, gc.Galaxy.Name, n)
		}
	}

	w := csv.NewWriter(out)

	header := []string{"r"}
	for _, gc := range res.Curves {
		header = append(header,
			gc.Galaxy.Name+":total",
			gc.Galaxy.Name+":newton",
			gc.Galaxy.Name+":psi",
		)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, r := range res.Radii {
		row := []string{formatValue(r)}
		for _, gc := range res.Curves {
			row = append(row,
				formatValue(gc.Total[i]),
				formatValue(gc.Newton[i]),
				formatValue(gc.Psi[i]),
			)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 9, 64)
}

// List returns the metadata of every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadCurves rebuilds the evaluated result of a stored run. Values carry
// the nine significant digits they were written with.
func (s *Store) LoadCurves(runID string) (*experiment.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, curvesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read curves %s: %w", runID, err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyRun
	}

	header := records[0]
	column := make(map[string]int, len(header))
	for i, h := range header {
		column[h] = i
	}
	rows := records[1:]

	read := func(name string) (fdft.Curve, error) {
		idx, ok := column[name]
		if !ok {
			return nil, fmt.Errorf("curves %s: missing column %q", runID, name)
		}
		out := make(fdft.Curve, len(rows))
		for i, rec := range rows {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
			if err != nil {
				return nil, fmt.Errorf("curves %s: row %d column %q: %w", runID, i+1, name, err)
			}
			out[i] = v
		}
		return out, nil
	}

	radii, err := read("r")
	if err != nil {
		return nil, err
	}

	res := &experiment.Result{
		Radii:  radii,
		Curves: make([]experiment.GalaxyCurves, 0, len(meta.Galaxies)),
	}
	for _, gm := range meta.Galaxies {
		c := &fdft.Components{Radii: radii}
		if c.Total, err = read(gm.Name + ":total"); err != nil {
			return nil, err
		}
		if c.Newton, err = read(gm.Name + ":newton"); err != nil {
			return nil, err
		}
		if c.Psi, err = read(gm.Name + ":psi"); err != nil {
			return nil, err
		}
		res.Curves = append(res.Curves, experiment.GalaxyCurves{
			Galaxy: galaxy.Galaxy{
				Name:   gm.Name,
				Color:  gm.Color,
				Params: gm.Params,
				Label:  galaxy.Annotation{X: gm.LabelX, Y: gm.LabelY},
			},
			Components: c,
		})
	}
	return res, nil
}
