// internal/commands/chart.go
package longctx

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mwiater/longctx/internal/render"
	"github.com/mwiater/longctx/internal/view"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// chartCmd draws the line chart once and exits.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the accuracy chart for the selected models",
	Long:  `Print one sparkline per selected model across every context window, with a legend ordered like the curated top list (or by performance with --all).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		heatmap := viper.GetBool("heatmap")
		return runChart(cmd, func(w io.Writer, chart view.Chart, opts render.Options) error {
			if heatmap {
				if err := render.Header(w, chart); err != nil {
					return err
				}
				return render.Heatmap(w, chart, opts)
			}
			return render.Chart(w, chart, opts)
		})
	},
}

// heatmapCmd prints the score table.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Print the score table with colored cells",
	Long:  `Print one row per displayed model, ordered by performance at the largest window, with a red-to-green cell per context window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChart(cmd, func(w io.Writer, chart view.Chart, opts render.Options) error {
			if err := render.Header(w, chart); err != nil {
				return err
			}
			return render.Heatmap(w, chart, opts)
		})
	},
}

// rankCmd lists models by their score at the largest window.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the displayed models by accuracy at the largest context window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChart(cmd, render.Ranking)
	},
}

// familiesCmd lists the catalog.
var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List provider families, their colors and models",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		reg, err := loadRegistry(cfg)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		if cfg.JSONMode {
			return writeJSON(cmd.OutOrStdout(), reg)
		}
		return render.Families(cmd.OutOrStdout(), reg)
	},
}

type drawFunc func(w io.Writer, chart view.Chart, opts render.Options) error

// runChart builds the chart from config and hands it to draw, or prints it
// as JSON in JSON mode.
func runChart(cmd *cobra.Command, draw drawFunc) error {
	cfg := GetConfig()
	builder, err := loadBuilder(cfg)
	if err != nil {
		return err
	}
	chart := builder.Build(initialState(cfg, builder), view.Highlight{})
	if cfg.JSONMode {
		return writeJSON(cmd.OutOrStdout(), chart)
	}
	opts := render.Options{
		Width:       render.TerminalWidth(os.Stdout, render.DefaultWidth),
		NarrowWidth: cfg.NarrowColumns(),
	}
	if cmd.OutOrStdout() != os.Stdout {
		opts.Width = render.DefaultWidth
	}
	return draw(cmd.OutOrStdout(), chart, opts)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	chartCmd.Flags().Bool("heatmap", false, "print the score table instead of the line chart")
	_ = viper.BindPFlag("heatmap", chartCmd.Flags().Lookup("heatmap"))

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(familiesCmd)
}
