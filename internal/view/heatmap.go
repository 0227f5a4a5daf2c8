// internal/view/heatmap.go
package view

import (
	"github.com/mwiater/longctx/internal/colorscale"
	"github.com/mwiater/longctx/internal/dataset"
	"github.com/mwiater/longctx/internal/selection"
)

// Cell is one (model, window) entry of the heatmap.
type Cell struct {
	Window     int      `json:"window"`
	Score      *float64 `json:"score"`
	Text       string   `json:"text"`
	Background string   `json:"background"`
	Hex        string   `json:"hex"`
	Foreground string   `json:"foreground"`
}

// HeatmapRow is one model across every window.
type HeatmapRow struct {
	Model       ModelView `json:"model"`
	FamilyColor string    `json:"familyColor"`
	Cells       []Cell    `json:"cells"`
}

// Heatmap is the tabular view: provider, model, then one column per window.
type Heatmap struct {
	Windows []WindowLabel `json:"windows"`
	Rows    []HeatmapRow  `json:"rows"`
}

// NewCell derives a cell's colors and text from its score.
func NewCell(window int, score *float64) Cell {
	color := colorscale.CellColor(score)
	return Cell{
		Window:     window,
		Score:      score,
		Text:       colorscale.FormatScore(score),
		Background: color.String(),
		Hex:        color.Hex(),
		Foreground: colorscale.TextColor(score),
	}
}

// Heatmap builds rows for models in the order given.
func (b *Builder) Heatmap(models []string, ranks map[string]int, state *selection.State) Heatmap {
	var hm Heatmap
	windows := b.Dataset.Windows()
	for _, w := range windows {
		hm.Windows = append(hm.Windows, WindowLabel{Window: w, Label: dataset.FormatWindow(w)})
	}
	for _, id := range models {
		mv := b.Model(id, ranks[id], state)
		row := HeatmapRow{Model: mv, FamilyColor: b.Registry.FamilyColor(mv.Family)}
		for i, score := range b.Dataset.Series(id) {
			row.Cells = append(row.Cells, NewCell(windows[i], score))
		}
		hm.Rows = append(hm.Rows, row)
	}
	return hm
}

// FamilyGroup is one provider block of the model selector.
type FamilyGroup struct {
	Name     string             `json:"name"`
	Color    string             `json:"color"`
	Coverage selection.Coverage `json:"coverage"`
	Models   []ModelView        `json:"models"`
}

// Selector groups every model by family in registry order, each group
// ordered by performance. Ranks here are positions within the family.
func (b *Builder) Selector(state *selection.State) []FamilyGroup {
	groups := make([]FamilyGroup, 0, len(b.Registry.Families))
	for _, family := range b.Registry.Families {
		group := FamilyGroup{
			Name:     family.Name,
			Color:    b.Registry.FamilyColor(family.Name),
			Coverage: state.Coverage(family.Models),
		}
		for i, id := range b.Rank(family.Models) {
			group.Models = append(group.Models, b.Model(id, i+1, state))
		}
		groups = append(groups, group)
	}
	return groups
}
