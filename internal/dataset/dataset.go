// internal/dataset/dataset.go
// Package dataset loads the benchmark results: one data point per context
// window, each carrying a score (or no score) per model.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

//go:embed benchmark.yaml
var bundledDataset []byte

// Source credits where the numbers came from.
type Source struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
	Date string `yaml:"date" json:"date"`
}

// DataPoint holds every model's accuracy at one context window size.
// A nil score means the model was not measured there, which is not the same as 0.
type DataPoint struct {
	Window int                 `yaml:"window" json:"window"`
	Scores map[string]*float64 `yaml:"scores" json:"scores"`
}

// Score returns the model's score at this point and whether one was recorded.
// NaN and infinite scores count as not recorded.
func (p *DataPoint) Score(model string) (float64, bool) {
	if p == nil {
		return 0, false
	}
	score, ok := p.Scores[model]
	if !ok || score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return 0, false
	}
	return *score, true
}

// ScorePtr returns the recorded score or nil.
func (p *DataPoint) ScorePtr(model string) *float64 {
	if v, ok := p.Score(model); ok {
		return &v
	}
	return nil
}

// Dataset is the ordered benchmark table. Points are sorted by Window once at load.
type Dataset struct {
	Title    string      `yaml:"title" json:"title"`
	Subtitle string      `yaml:"subtitle" json:"subtitle"`
	Source   Source      `yaml:"source" json:"source"`
	Points   []DataPoint `yaml:"points" json:"points"`
}

// Default returns the dataset bundled with the binary.
func Default() (*Dataset, error) {
	return Load(bytes.NewReader(bundledDataset))
}

// Bundled returns the raw bundled dataset document.
func Bundled() []byte {
	return append([]byte(nil), bundledDataset...)
}

// LoadFile reads a dataset from a YAML or JSON file.
func LoadFile(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %q: %w", path, err)
	}
	defer file.Close()

	ds, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", path, err)
	}
	return ds, nil
}

// Load decodes a dataset document and orders its points by window size.
func Load(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := decode(r, &ds); err != nil {
		return nil, err
	}
	ds.sortPoints()
	return &ds, nil
}

// New builds a dataset from points, ordering them by window size.
func New(points ...DataPoint) *Dataset {
	ds := &Dataset{Points: append([]DataPoint(nil), points...)}
	ds.sortPoints()
	return ds
}

func (d *Dataset) sortPoints() {
	sort.SliceStable(d.Points, func(i, j int) bool {
		return d.Points[i].Window < d.Points[j].Window
	})
}

// Empty reports whether there is nothing to chart.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Points) == 0
}

// Last returns the point with the largest window, the reference for ranking.
func (d *Dataset) Last() (*DataPoint, bool) {
	if d.Empty() {
		return nil, false
	}
	return &d.Points[len(d.Points)-1], true
}

// At returns the point recorded for window.
func (d *Dataset) At(window int) (*DataPoint, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Points {
		if d.Points[i].Window == window {
			return &d.Points[i], true
		}
	}
	return nil, false
}

// Windows lists the window sizes in ascending order.
func (d *Dataset) Windows() []int {
	if d == nil {
		return nil
	}
	windows := make([]int, 0, len(d.Points))
	for _, p := range d.Points {
		windows = append(windows, p.Window)
	}
	return windows
}

// Series returns the model's score at every window, nil where absent.
func (d *Dataset) Series(model string) []*float64 {
	if d == nil {
		return nil
	}
	series := make([]*float64, len(d.Points))
	for i := range d.Points {
		series[i] = d.Points[i].ScorePtr(model)
	}
	return series
}

// FormatWindow renders a window size the way the axis labels it: 0, 400, 1k, 1.5k, 120k.
func FormatWindow(window int) string {
	if window == 0 {
		return "0"
	}
	if window < 1000 {
		return strconv.Itoa(window)
	}
	return strconv.FormatFloat(float64(window)/1000, 'f', -1, 64) + "k"
}
