// internal/commands/tui.go
package longctx

import (
	"github.com/mwiater/longctx/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd starts the interactive chart.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Explore the chart interactively",
	Long: `Start the interactive chart. Move through the provider groups with the arrow keys,
toggle a model or a whole provider with space, press 'a' to show every model and 'm' to
switch between the line chart and the heatmap.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		builder, err := loadBuilder(cfg)
		if err != nil {
			return err
		}
		return tui.Run(cmd.Context(), cfg, builder, initialState(cfg, builder))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
