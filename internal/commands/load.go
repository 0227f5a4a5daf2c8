// internal/commands/load.go
package longctx

import (
	"fmt"
	"strings"

	"github.com/mwiater/longctx/internal/appconfig"
	"github.com/mwiater/longctx/internal/catalog"
	"github.com/mwiater/longctx/internal/dataset"
	"github.com/mwiater/longctx/internal/logging"
	"github.com/mwiater/longctx/internal/selection"
	"github.com/mwiater/longctx/internal/view"
)

// loadRegistry reads the configured catalog, or the bundled one.
func loadRegistry(cfg *appconfig.Config) (*catalog.Registry, error) {
	if strings.TrimSpace(cfg.CatalogPath) == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

// loadDataset reads the configured dataset, or the bundled one.
func loadDataset(cfg *appconfig.Config) (*dataset.Dataset, error) {
	if strings.TrimSpace(cfg.DataPath) == "" {
		return dataset.Default()
	}
	return dataset.LoadFile(cfg.DataPath)
}

// loadBuilder loads both sources and logs any consistency problems.
// Problems never stop rendering; `validate` reports them.
func loadBuilder(cfg *appconfig.Config) (*view.Builder, error) {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	ds, err := loadDataset(cfg)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	for _, p := range reg.Problems() {
		logging.LogEvent("catalog: %s", p)
	}
	for _, p := range ds.Problems() {
		logging.LogEvent("dataset: %s", p)
	}
	logging.LogDebug("loaded %d families and %d windows", len(reg.Families), len(ds.Points))
	return view.NewBuilder(reg, ds), nil
}

// initialState applies the configured selection and show-all flag.
func initialState(cfg *appconfig.Config, b *view.Builder) *selection.State {
	state := b.InitialSelection()
	if models := cfg.SelectedModels(); len(models) > 0 {
		state = selection.New(models)
	}
	state.SetShowAll(cfg.ShowAll)
	return state
}
