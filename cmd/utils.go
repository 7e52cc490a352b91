package cmd

import (
	"fmt"
	"os"

	"svcmenu/internal/catalog"
	"svcmenu/internal/config"
	"svcmenu/internal/kconfig"
	"svcmenu/internal/models"
)

// loadCatalog loads the tool configuration and builds the full entry
// catalog from the registry and the persisted selections.
func loadCatalog() (*config.Config, *kconfig.FileStore, *models.Model, catalog.LoadResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, catalog.LoadResult{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	store := cfg.Store()
	model := models.NewModel()
	loaded := catalog.Load(cfg.Registry(), store, model)
	return cfg, store, model, loaded, nil
}

// applySelections snapshots the touched files and persists the current
// selections, printing the restart notice when the plugin set changed.
func applySelections(cfg *config.Config, store *kconfig.FileStore, model *models.Model, loaded *catalog.LoadResult) error {
	if _, err := cfg.Backups().Take(store); err != nil {
		fmt.Fprintf(os.Stderr, "warning: snapshot failed: %v\n", err)
	}

	result, err := catalog.Apply(store, model, loaded)
	if err != nil {
		return err
	}
	if result.RestartNeeded {
		fmt.Println("Restart the file manager for the plugin changes to take effect.")
	}
	return nil
}

func mark(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
