// internal/render/render.go
// Package render draws charts, heatmaps and rankings for the terminal.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/longctx/internal/colorscale"
	"github.com/mwiater/longctx/internal/util"
	"github.com/mwiater/longctx/internal/view"
	"golang.org/x/term"
)

// DefaultWidth is assumed when the output is not a terminal.
const DefaultWidth = 120

// sparkGlyphs step from 0 to 100 in eighths.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// missingGlyph marks windows with no score.
const missingGlyph = '·'

// Options controls layout.
type Options struct {
	// Width is the terminal width in columns.
	Width int
	// NarrowWidth is the width below which the compact layout is used.
	NarrowWidth int
}

// Narrow reports whether the compact layout applies.
func (o Options) Narrow() bool {
	return o.NarrowWidth > 0 && o.Width > 0 && o.Width < o.NarrowWidth
}

// TerminalWidth returns f's terminal width, or fallback when f is not a terminal.
func TerminalWidth(f *os.File, fallback int) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	axisStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")).Padding(1, 2)
)

// Sparkline draws one glyph per window.
func Sparkline(points []*float64) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteRune(sparkGlyph(p))
	}
	return b.String()
}

func sparkGlyph(score *float64) rune {
	if score == nil || math.IsNaN(*score) {
		return missingGlyph
	}
	v := math.Max(0, math.Min(100, *score))
	idx := int(v / 100 * float64(len(sparkGlyphs)-1))
	return sparkGlyphs[idx]
}

// Header writes the title block shared by every terminal view.
func Header(w io.Writer, chart view.Chart) error {
	var lines []string
	if chart.Title != "" {
		lines = append(lines, titleStyle.Render(chart.Title))
	}
	if chart.Subtitle != "" {
		lines = append(lines, subtitleStyle.Render(chart.Subtitle))
	}
	lines = append(lines, subtitleStyle.Render("Accuracy (%) across different context window sizes"))
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// Chart writes the line chart as one sparkline row per legend entry.
func Chart(w io.Writer, chart view.Chart, opts Options) error {
	if err := Header(w, chart); err != nil {
		return err
	}
	if chart.Status != view.StatusOK {
		_, err := fmt.Fprintln(w, emptyStyle.Render(chart.Message))
		return err
	}

	lines := make(map[string]view.Line, len(chart.Lines))
	nameWidth := 0
	for _, line := range chart.Lines {
		lines[line.Model.ID] = line
		nameWidth = util.Max(nameWidth, util.Width(line.Model.DisplayName))
	}
	if opts.Narrow() {
		nameWidth = util.Min(nameWidth, 18)
	}

	cell := 1
	if !opts.Narrow() {
		cell = 6
	}

	var rows []string
	rows = append(rows, axisStyle.Render(strings.Repeat(" ", nameWidth+2)+axisLabels(chart.Windows, cell)))
	for _, item := range chart.Legend {
		line := lines[item.Model.ID]
		name := util.PadRight(item.Model.DisplayName, nameWidth)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Model.Color))
		if line.Emphasized {
			style = style.Bold(true)
		}
		if item.Dimmed {
			style = style.Faint(true)
		}
		row := style.Render(name) + "  " + style.Render(spread(Sparkline(line.Points), cell))
		row += "  " + lastScore(line.Points)
		rows = append(rows, row)
	}
	_, err := fmt.Fprintln(w, strings.Join(rows, "\n"))
	if err != nil {
		return err
	}
	return Footer(w, chart)
}

// Footer credits the data source.
func Footer(w io.Writer, chart view.Chart) error {
	if chart.Source.Name == "" {
		return nil
	}
	text := "Data source: " + chart.Source.Name
	if chart.Source.Date != "" {
		text += " (" + chart.Source.Date + ")"
	}
	if chart.Source.URL != "" {
		text += " " + chart.Source.URL
	}
	_, err := fmt.Fprintln(w, dimStyle.Render(text))
	return err
}

func lastScore(points []*float64) string {
	if len(points) == 0 {
		return colorscale.FormatPercent(nil)
	}
	return colorscale.FormatPercent(points[len(points)-1])
}

// spread widens each glyph to cell columns so the sparkline lines up with the axis.
func spread(spark string, cell int) string {
	if cell <= 1 {
		return spark
	}
	var b strings.Builder
	for _, r := range spark {
		b.WriteString(strings.Repeat(string(r), cell-1))
		b.WriteByte(' ')
	}
	return b.String()
}

func axisLabels(windows []view.WindowLabel, cell int) string {
	if cell <= 1 {
		if len(windows) == 0 {
			return ""
		}
		return windows[0].Label + "→" + windows[len(windows)-1].Label
	}
	var b strings.Builder
	for _, w := range windows {
		b.WriteString(util.PadRight(w.Label, cell))
	}
	return b.String()
}
