// internal/commands/validate.go
package longctx

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/longctx/internal/catalog"
	"github.com/mwiater/longctx/internal/dataset"
	"github.com/spf13/cobra"
)

// validateCmd checks the catalog and dataset documents.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog and dataset for schema and consistency problems",
	Long:  `Validate the configured (or bundled) catalog and dataset against their schemas and report duplicate models, unknown top models, duplicate or unordered windows and out-of-range scores. Exits non-zero when any problem is found.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		out := cmd.OutOrStdout()
		ok := color.New(color.FgGreen).SprintFunc()
		bad := color.New(color.FgRed, color.Bold).SprintFunc()

		checks := []struct {
			name     string
			path     string
			bundled  []byte
			validate func([]byte) ([]string, error)
		}{
			{name: "catalog", path: cfg.CatalogPath, bundled: catalog.Bundled(), validate: catalog.Validate},
			{name: "dataset", path: cfg.DataPath, bundled: dataset.Bundled(), validate: dataset.Validate},
		}

		total := 0
		for _, check := range checks {
			raw, source, err := readSource(check.path, check.bundled)
			if err != nil {
				return fmt.Errorf("read %s: %w", check.name, err)
			}
			problems, err := check.validate(raw)
			if err != nil {
				return err
			}
			if len(problems) == 0 {
				fmt.Fprintf(out, "%s %s (%s)\n", ok("ok"), check.name, source)
				continue
			}
			total += len(problems)
			fmt.Fprintf(out, "%s %s (%s): %d problem(s)\n", bad("FAIL"), check.name, source, len(problems))
			for _, p := range problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
		}
		if total > 0 {
			return fmt.Errorf("%d validation problem(s) found", total)
		}
		return nil
	},
}

func readSource(path string, bundled []byte) ([]byte, string, error) {
	if strings.TrimSpace(path) == "" {
		return bundled, "bundled", nil
	}
	raw, err := os.ReadFile(path)
	return raw, path, err
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
