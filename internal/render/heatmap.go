// internal/render/heatmap.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mwiater/longctx/internal/catalog"
	"github.com/mwiater/longctx/internal/colorscale"
	"github.com/mwiater/longctx/internal/util"
	"github.com/mwiater/longctx/internal/view"
)

const (
	providerWidth = 10
	cellWidth     = 7
)

// Heatmap writes the score table with one colored cell per window.
func Heatmap(w io.Writer, chart view.Chart, opts Options) error {
	if chart.Status != view.StatusOK {
		_, err := fmt.Fprintln(w, emptyStyle.Render(chart.Message))
		return err
	}

	hm := chart.Heatmap
	modelWidth := len("Model")
	for _, row := range hm.Rows {
		modelWidth = util.Max(modelWidth, util.Width(row.Model.DisplayName))
	}
	if opts.Narrow() {
		modelWidth = util.Min(modelWidth, 16)
	}

	header := axisStyle.Bold(true)
	var b strings.Builder
	if !opts.Narrow() {
		b.WriteString(header.Render(util.PadRight("PROVIDER", providerWidth)) + " ")
	}
	b.WriteString(header.Render(util.PadRight("MODEL", modelWidth)) + " ")
	for _, win := range hm.Windows {
		b.WriteString(header.Width(cellWidth).Align(lipgloss.Center).Render(win.Label))
	}
	b.WriteByte('\n')

	for _, row := range hm.Rows {
		if !opts.Narrow() {
			family := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(row.FamilyColor))
			b.WriteString(family.Render(util.PadRight(row.Model.Family, providerWidth)) + " ")
		}
		b.WriteString(util.PadRight(row.Model.DisplayName, modelWidth) + " ")
		for _, c := range row.Cells {
			b.WriteString(cellStyle(c).Render(c.Text))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func cellStyle(c view.Cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(c.Hex)).
		Foreground(lipgloss.Color(c.Foreground))
}

// Ranking writes the displayed models ordered by their score at the largest window.
func Ranking(w io.Writer, chart view.Chart, opts Options) error {
	if chart.Status != view.StatusOK {
		_, err := fmt.Fprintln(w, emptyStyle.Render(chart.Message))
		return err
	}

	nameWidth := 0
	for _, line := range chart.Lines {
		nameWidth = util.Max(nameWidth, util.Width(line.Model.DisplayName))
	}
	ranked := make([]view.Line, len(chart.Lines))
	for _, line := range chart.Lines {
		if line.Model.Rank > 0 && line.Model.Rank <= len(ranked) {
			ranked[line.Model.Rank-1] = line
		}
	}

	high := color.New(color.FgGreen, color.Bold).SprintFunc()
	mid := color.New(color.FgYellow).SprintFunc()
	low := color.New(color.FgRed).SprintFunc()
	none := color.New(color.Faint).SprintFunc()

	for _, line := range ranked {
		if line.Model.ID == "" {
			continue
		}
		last := lastPoint(line.Points)
		text := colorscale.FormatPercent(last)
		switch {
		case last == nil:
			text = none(text)
		case *last > 75:
			text = high(text)
		case *last > colorscale.DarkTextThreshold:
			text = mid(text)
		default:
			text = low(text)
		}
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(line.Model.Color)).Render(util.PadRight(line.Model.DisplayName, nameWidth))
		family := ""
		if !opts.Narrow() {
			family = "  " + dimStyle.Render(line.Model.Family)
		}
		if _, err := fmt.Fprintf(w, "%3d. %s  %s%s\n", line.Model.Rank, name, text, family); err != nil {
			return err
		}
	}
	return nil
}

func lastPoint(points []*float64) *float64 {
	if len(points) == 0 {
		return nil
	}
	return points[len(points)-1]
}

// Families lists every family with its color and members.
func Families(w io.Writer, reg *catalog.Registry) error {
	top := reg.TopModelOrder()
	for _, family := range reg.Families {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(reg.FamilyColor(family.Name)))
		if _, err := fmt.Fprintf(w, "%s %s\n", style.Render(family.Name), dimStyle.Render(reg.FamilyColor(family.Name))); err != nil {
			return err
		}
		for _, model := range family.Models {
			marker := " "
			if _, ok := top[model]; ok {
				marker = "*"
			}
			if _, err := fmt.Fprintf(w, "  %s %s %s\n", marker, util.PadRight(catalog.DisplayName(model), 32), dimStyle.Render(model)); err != nil {
				return err
			}
		}
	}
	return nil
}
