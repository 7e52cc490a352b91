package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"svcmenu/internal/catalog"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Restore the default selections and apply",
	Long: "Re-enable every service menu and file item action, disable all version\n" +
		"control plugins and the built-in command toggles, then save.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, model, loaded, err := loadCatalog()
		if err != nil {
			return err
		}

		catalog.RestoreDefaults(model)
		if err := applySelections(cfg, store, model, &loaded); err != nil {
			return err
		}

		fmt.Printf("Defaults restored for %d entries\n", model.Len())
		return nil
	},
}

func DefaultsInit() {
	rootCmd.AddCommand(defaultsCmd)
}
