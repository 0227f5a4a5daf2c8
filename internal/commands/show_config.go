// internal/commands/show_config.go
package longctx

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/longctx/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showCmd represents the 'show' command group for displaying resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying resources",
	Long:  `The 'show' command groups subcommands that display resources or information related to longctx.`,
}

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:       viper.GetBool("debug"),
			JSONMode:    viper.GetBool("jsonMode"),
			ShowAll:     viper.GetBool("showAll"),
			DataPath:    viper.GetString("dataPath"),
			CatalogPath: viper.GetString("catalogPath"),
			LogFile:     viper.GetString("logFile"),
		}
		cfg := currentConfig
		if cfg != nil && cfg.JSONMode {
			_ = writeJSON(cmd.OutOrStdout(), cfg)
			return
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), cfg, fallback)
		if DebugEnabled() && cfg != nil {
			pp.Fprintln(cmd.OutOrStdout(), cfg)
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
