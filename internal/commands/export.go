// internal/commands/export.go
package longctx

import (
	"fmt"

	"github.com/mwiater/longctx/internal/logging"
	"github.com/mwiater/longctx/internal/report"
	"github.com/mwiater/longctx/internal/view"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd writes the chart to a file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the chart as HTML, JSON, YAML or Markdown",
	Long:  `Write the current chart to a file. HTML produces a standalone dashboard with the interactive line chart and the heatmap; JSON and YAML dump the full chart projection; Markdown writes the heatmap as a table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}
		builder, err := loadBuilder(cfg)
		if err != nil {
			return err
		}
		chart := builder.Build(initialState(cfg, builder), view.Highlight{})

		path := cfg.ExportFile()
		if err := report.Write(path, cfg.Format(), chart); err != nil {
			return err
		}
		logging.LogEvent("exported %s report to %s", cfg.Format(), path)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s report to %s\n", cfg.Format(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "", "export format: html, json, yaml or markdown (default html)")
	exportCmd.Flags().StringP("output", "o", "", "output file (default reports/longctx.<ext>)")
	_ = viper.BindPFlag("exportFormat", exportCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("exportPath", exportCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(exportCmd)
}
