// internal/commands/root.go
package longctx

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/longctx/internal/appconfig"
	"github.com/mwiater/longctx/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// boolSettings and stringSettings map config keys to their persistent flags.
var (
	boolSettings   = map[string]string{"debug": "debug", "jsonMode": "jsonMode", "showAll": "all"}
	stringSettings = map[string]string{"dataPath": "data", "catalogPath": "catalog", "logFile": "logFile"}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "longctx",
	Short: "longctx: long-context benchmark charts for the terminal and the browser",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		flags := cmd.Flags()
		for key, name := range boolSettings {
			if !flags.Changed(name) {
				_ = flags.Set(name, strconv.FormatBool(viper.GetBool(key)))
			}
		}
		for key, name := range stringSettings {
			if !flags.Changed(name) {
				_ = flags.Set(name, viper.GetString(key))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		if err := cfg.Validate(); err != nil {
			return err
		}
		currentConfig = &cfg

		// The interactive chart owns the terminal, so it logs to the file only.
		console := cfg.Debug && cmd.Name() != tuiCmd.Name()
		if err := logging.Init(currentConfig.LogFilePath(), console); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetDebug(cfg.Debug)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("jsonMode", false, "print machine-readable JSON instead of styled text")
	rootCmd.PersistentFlags().Bool("all", false, "display every known model instead of the selection")
	rootCmd.PersistentFlags().StringSlice("models", nil, "models to select initially (defaults to the curated top list)")
	rootCmd.PersistentFlags().String("data", "", "benchmark dataset file, YAML or JSON (defaults to the bundled dataset)")
	rootCmd.PersistentFlags().String("catalog", "", "model catalog file, YAML or JSON (defaults to the bundled catalog)")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("jsonMode", rootCmd.PersistentFlags().Lookup("jsonMode"))
	_ = viper.BindPFlag("showAll", rootCmd.PersistentFlags().Lookup("all"))
	_ = viper.BindPFlag("models", rootCmd.PersistentFlags().Lookup("models"))
	_ = viper.BindPFlag("dataPath", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("catalogPath", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix("LONGCTX")
	viper.AutomaticEnv()
}

// ensureConfigLoaded reads the config. A missing file means defaults.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// JSONModeEnabled returns true if JSON mode is enabled.
func JSONModeEnabled() bool { return viper.GetBool("jsonMode") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
