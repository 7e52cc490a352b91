package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"svcmenu/internal/models"
)

var (
	listEnabled  bool
	listDisabled bool
	listKind     string
	listFilter   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the context menu entries and their state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listEnabled && listDisabled {
			return fmt.Errorf("--enabled and --disabled are mutually exclusive")
		}
		var kind models.RowKind
		if listKind != "" {
			k, err := parseKind(listKind)
			if err != nil {
				return err
			}
			kind = k
		}

		_, _, model, _, err := loadCatalog()
		if err != nil {
			return err
		}

		proj := models.NewProjection(model)
		if listFilter != "" {
			proj.SetFilter(listFilter)
		}

		for _, row := range proj.Rows() {
			if listEnabled && !row.Checked {
				continue
			}
			if listDisabled && row.Checked {
				continue
			}
			if listKind != "" && row.Kind != kind {
				continue
			}
			fmt.Printf("%s %-48s %-16s %s\n", mark(row.Checked), row.DisplayText, row.Kind, row.Identifier)
		}
		return nil
	},
}

func parseKind(s string) (models.RowKind, error) {
	for _, k := range []models.RowKind{models.KindService, models.KindVersionControl, models.KindDelete, models.KindCopyMove} {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q (service, version-control, delete, copy-move)", s)
}

func ListInit() {
	listCmd.Flags().BoolVar(&listEnabled, "enabled", false, "only entries that are checked")
	listCmd.Flags().BoolVar(&listDisabled, "disabled", false, "only entries that are unchecked")
	listCmd.Flags().StringVar(&listKind, "kind", "", "only entries of one kind (service, version-control, delete, copy-move)")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "case-insensitive substring filter on the display text")
	rootCmd.AddCommand(listCmd)
}
