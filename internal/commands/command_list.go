// internal/commands/command_list.go
package longctx

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/longctx/internal/util"
)

// CommandInfo holds the path and description of a command for display.
type CommandInfo struct {
	Path        string
	Description string
}

var commandPathStyle = lipgloss.NewStyle().Bold(true)

// ListCommands prints the command tree in a two-column layout.
func ListCommands(out io.Writer, commands []CommandInfo) {
	width := 0
	for _, data := range commands {
		width = util.Max(width, util.Width(data.Path))
	}

	fmt.Fprintln(out, "Commands and Subcommands:")
	for _, data := range commands {
		fmt.Fprintf(out, "  %s  %s\n", commandPathStyle.Render(util.PadRight(data.Path, width)), data.Description)
	}
}
