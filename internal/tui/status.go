// internal/tui/status.go
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// formatModeIndicator describes which models the chart is drawing.
func formatModeIndicator(showAll bool, selected int) string {
	if showAll {
		return "Models: all"
	}
	return fmt.Sprintf("Models: %d selected", selected)
}

// renderModeBadge returns a Lipgloss-styled badge for the show-all state.
func renderModeBadge(showAll bool, selected int) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	return badgeStyle.Render(formatModeIndicator(showAll, selected))
}

// renderViewBadge returns a Lipgloss-styled badge for the active view.
func renderViewBadge(heatmap bool) string {
	label := "View: chart"
	if heatmap {
		label = "View: heatmap"
	}
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	return badgeStyle.Render(label)
}
