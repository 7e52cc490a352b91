package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"svcmenu/internal/config"
	"svcmenu/internal/download"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch new services from the configured sources",
	Long: "Clone or update every configured source repository and install the\n" +
		"service menu and plugin files it carries into the local registry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		results, err := cfg.Downloads().FetchAll()
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No sources configured; add one with 'svcmenu sources add'")
			return nil
		}

		var failed int
		for _, r := range results {
			switch {
			case r.Err != nil:
				failed++
				fmt.Printf("✗ %-20s %v\n", r.Source.Name, r.Err)
			case r.Updated:
				fmt.Printf("✓ %-20s %d entries installed\n", r.Source.Name, len(r.Installed))
			default:
				fmt.Printf("- %-20s up to date\n", r.Source.Name)
			}
		}

		if download.Changed(results) {
			fmt.Println("New entries installed; they show up in the list on the next run.")
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d sources failed", failed, len(results))
		}
		return nil
	},
}

func FetchInit() {
	rootCmd.AddCommand(fetchCmd)
}
