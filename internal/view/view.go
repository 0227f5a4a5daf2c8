// internal/view/view.go
// Package view projects the catalog, the dataset and the current selection
// into the plain values every presentation layer draws: chart lines, legend,
// tooltip rows, heatmap cells and the grouped model selector.
package view

import (
	"github.com/mwiater/longctx/internal/catalog"
	"github.com/mwiater/longctx/internal/colorscale"
	"github.com/mwiater/longctx/internal/dataset"
	"github.com/mwiater/longctx/internal/ranking"
	"github.com/mwiater/longctx/internal/selection"
)

// Status tells the presentation layer whether there is anything to draw.
type Status string

const (
	StatusOK          Status = "ok"
	StatusNoData      Status = "no-data"
	StatusNoSelection Status = "no-selection"
)

// Message returns the text shown in place of an empty chart.
func (s Status) Message() string {
	switch s {
	case StatusNoData:
		return "No benchmark data available."
	case StatusNoSelection:
		return "Select at least one model to display."
	default:
		return ""
	}
}

// Highlight is hover state. It changes emphasis only, never the selection.
type Highlight struct {
	Model  string `json:"model,omitempty"`
	Family string `json:"family,omitempty"`
}

// ModelView is everything a presentation layer needs to label one model.
type ModelView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Family      string `json:"family"`
	Color       string `json:"color"`
	Rank        int    `json:"rank"`
	Selected    bool   `json:"selected"`
}

// WindowLabel is one x-axis tick.
type WindowLabel struct {
	Window int    `json:"window"`
	Label  string `json:"label"`
}

// Line is one model's series across every window, nil where not measured.
type Line struct {
	Model      ModelView  `json:"model"`
	Points     []*float64 `json:"points"`
	Emphasized bool       `json:"emphasized"`
}

// LegendItem is one legend entry.
type LegendItem struct {
	Model  ModelView `json:"model"`
	Dimmed bool      `json:"dimmed"`
}

// Chart is the complete, render-ready projection.
type Chart struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Source   dataset.Source `json:"source"`
	Status   Status         `json:"status"`
	Message  string         `json:"message,omitempty"`
	ShowAll  bool           `json:"showAll"`
	Windows  []WindowLabel  `json:"windows"`
	Lines    []Line         `json:"lines"`
	Legend   []LegendItem   `json:"legend"`
	Heatmap  Heatmap        `json:"heatmap"`
	Selector []FamilyGroup  `json:"selector"`
}

// Builder derives charts from the immutable catalog and dataset.
type Builder struct {
	Registry *catalog.Registry
	Dataset  *dataset.Dataset
}

// NewBuilder wires a builder over a registry and dataset.
func NewBuilder(reg *catalog.Registry, ds *dataset.Dataset) *Builder {
	return &Builder{Registry: reg, Dataset: ds}
}

// InitialSelection returns the selection state a session starts with.
func (b *Builder) InitialSelection() *selection.State {
	return selection.New(b.Registry.TopModels)
}

// DisplayedModels lists what is drawn: every family member in show-all mode,
// otherwise the selection in insertion order.
func (b *Builder) DisplayedModels(state *selection.State) []string {
	if state.ShowAll() {
		return b.Registry.AllModels()
	}
	return state.Selected()
}

// Rank orders models by the dataset's largest window.
func (b *Builder) Rank(models []string) []string {
	return ranking.ByLatest(models, b.Dataset)
}

// Model builds the label for one model. rank is 1-based, 0 when unranked.
func (b *Builder) Model(id string, rank int, state *selection.State) ModelView {
	return ModelView{
		ID:          id,
		DisplayName: catalog.DisplayName(id),
		Family:      b.Registry.FamilyOf(id),
		Color:       b.Registry.ColorOf(id),
		Rank:        rank,
		Selected:    state != nil && state.Contains(id),
	}
}

// Build produces the chart for the current selection and hover state.
func (b *Builder) Build(state *selection.State, hl Highlight) Chart {
	chart := Chart{
		Title:    b.Dataset.Title,
		Subtitle: b.Dataset.Subtitle,
		Source:   b.Dataset.Source,
		ShowAll:  state.ShowAll(),
		Status:   StatusOK,
		Selector: b.Selector(state),
	}
	for _, w := range b.Dataset.Windows() {
		chart.Windows = append(chart.Windows, WindowLabel{Window: w, Label: dataset.FormatWindow(w)})
	}

	displayed := b.DisplayedModels(state)
	switch {
	case b.Dataset.Empty():
		chart.Status = StatusNoData
	case len(displayed) == 0:
		chart.Status = StatusNoSelection
	}
	chart.Message = chart.Status.Message()
	if chart.Status != StatusOK {
		return chart
	}

	ranks := b.ranks(displayed)
	for _, id := range displayed {
		chart.Lines = append(chart.Lines, Line{
			Model:      b.Model(id, ranks[id], state),
			Points:     b.Dataset.Series(id),
			Emphasized: state.Contains(id),
		})
	}
	chart.Legend = b.Legend(state, displayed, ranks, hl)
	chart.Heatmap = b.Heatmap(b.Rank(displayed), ranks, state)
	return chart
}

// Legend orders legend entries: by performance in show-all mode, otherwise
// by position in the curated top list.
func (b *Builder) Legend(state *selection.State, displayed []string, ranks map[string]int, hl Highlight) []LegendItem {
	var ordered []string
	if state.ShowAll() {
		ordered = b.Rank(displayed)
	} else {
		ordered = ranking.ByTopModelOrder(displayed, b.Registry.TopModelOrder())
	}

	items := make([]LegendItem, 0, len(ordered))
	for _, id := range ordered {
		mv := b.Model(id, ranks[id], state)
		items = append(items, LegendItem{Model: mv, Dimmed: hl.Dims(mv)})
	}
	return items
}

// Dims reports whether a model is faded under this highlight. Hovering a
// model fades every other model; hovering a family fades other families.
func (hl Highlight) Dims(mv ModelView) bool {
	if hl.Model != "" {
		return hl.Model != mv.ID
	}
	if hl.Family != "" {
		return hl.Family != mv.Family
	}
	return false
}

func (b *Builder) ranks(models []string) map[string]int {
	ranks := make(map[string]int, len(models))
	for i, id := range b.Rank(models) {
		if _, ok := ranks[id]; !ok {
			ranks[id] = i + 1
		}
	}
	return ranks
}

// TooltipEntry is one line of the hover tooltip.
type TooltipEntry struct {
	Model ModelView `json:"model"`
	Score *float64  `json:"score"`
	Text  string    `json:"text"`
}

// Tooltip describes one window: label plus displayed models ranked by their
// score at that window, unmeasured models last.
type Tooltip struct {
	Label   string         `json:"label"`
	Entries []TooltipEntry `json:"entries"`
}

// Tooltip builds the tooltip for a window. Unknown windows get an N/A label.
func (b *Builder) Tooltip(state *selection.State, window int) Tooltip {
	point, ok := b.Dataset.At(window)
	if !ok {
		return Tooltip{Label: "Context: N/A"}
	}
	displayed := b.DisplayedModels(state)
	ranks := b.ranks(displayed)
	tip := Tooltip{Label: "Context: " + dataset.FormatWindow(window)}
	for _, id := range ranking.ByPerformance(displayed, point) {
		score := point.ScorePtr(id)
		tip.Entries = append(tip.Entries, TooltipEntry{
			Model: b.Model(id, ranks[id], state),
			Score: score,
			Text:  catalog.DisplayName(id) + ": " + colorscale.FormatPercent(score),
		})
	}
	return tip
}
