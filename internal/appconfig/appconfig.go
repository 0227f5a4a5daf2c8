// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/longctx/internal/report"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultListenAddr is where `serve` listens when the config omits an address.
	defaultListenAddr = "127.0.0.1:8080"
	// defaultNarrowWidth is the terminal width below which layouts switch to compact.
	defaultNarrowWidth = 100
	// defaultExportFormat is used by `export` when no format is configured.
	defaultExportFormat = "html"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug        bool     `json:"debug"`
	JSONMode     bool     `json:"jsonMode"`
	DataPath     string   `json:"dataPath,omitempty"`
	CatalogPath  string   `json:"catalogPath,omitempty"`
	LogFile      string   `json:"logFile,omitempty"`
	ShowAll      bool     `json:"showAll"`
	Heatmap      bool     `json:"heatmap"`
	Models       []string `json:"models,omitempty"`
	Addr         string   `json:"addr,omitempty"`
	NarrowWidth  int      `json:"narrowWidth,omitempty"`
	ExportFormat string   `json:"exportFormat,omitempty"`
	ExportPath   string   `json:"exportPath,omitempty"`
	ConfigPath   string   `json:"-"`
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "longctx.log"
}

// ListenAddr returns the address for the preview server.
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	return defaultListenAddr
}

// NarrowColumns returns the terminal width below which output is compacted.
func (c Config) NarrowColumns() int {
	if c.NarrowWidth <= 0 {
		return defaultNarrowWidth
	}
	return c.NarrowWidth
}

// Format returns the export format, lowercased, falling back to html.
func (c Config) Format() string {
	if f := strings.ToLower(strings.TrimSpace(c.ExportFormat)); f != "" {
		return f
	}
	return defaultExportFormat
}

// ExportFile returns the export destination, derived from the format when unset.
func (c Config) ExportFile() string {
	if path := strings.TrimSpace(c.ExportPath); path != "" {
		return path
	}
	return "reports/longctx." + report.Extension(c.Format())
}

// SelectedModels returns the configured initial selection, trimmed, with blanks removed.
// Entries may be comma separated.
func (c Config) SelectedModels() []string {
	var models []string
	for _, entry := range c.Models {
		for _, m := range strings.Split(entry, ",") {
			if m = strings.TrimSpace(m); m != "" {
				models = append(models, m)
			}
		}
	}
	return models
}

// Validate reports configuration values that cannot work.
func (c Config) Validate() error {
	format := c.Format()
	for _, f := range report.Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("invalid configuration: unknown export format %q (want one of %s)", c.ExportFormat, strings.Join(report.Formats, ", "))
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, config.Validate()
	}

	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
