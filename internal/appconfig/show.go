package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintf(out, "  Debug:          %v\n", cfg.Debug)
	fmt.Fprintf(out, "  JSON Mode:      %v\n", cfg.JSONMode)
	fmt.Fprintf(out, "  Show All:       %v\n", cfg.ShowAll)
	fmt.Fprintf(out, "  Heatmap:        %v\n", cfg.Heatmap)
	fmt.Fprintf(out, "  Dataset:        %s\n", sourceLabel(cfg.DataPath))
	fmt.Fprintf(out, "  Catalog:        %s\n", sourceLabel(cfg.CatalogPath))
	if models := cfg.SelectedModels(); len(models) > 0 {
		fmt.Fprintf(out, "  Models:         %s\n", strings.Join(models, ", "))
	} else {
		fmt.Fprintln(out, "  Models:         top models")
	}
	fmt.Fprintf(out, "  Log File:       %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Listen Addr:    %s\n", cfg.ListenAddr())
	fmt.Fprintf(out, "  Narrow Width:   %d columns\n", cfg.NarrowColumns())
	fmt.Fprintf(out, "  Export:         %s -> %s\n", cfg.Format(), cfg.ExportFile())
}

func sourceLabel(path string) string {
	if strings.TrimSpace(path) == "" {
		return "bundled"
	}
	return path
}
