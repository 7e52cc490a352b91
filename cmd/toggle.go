package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable <identifier>",
	Short: "Check one entry and apply immediately",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEntry(args[0], true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <identifier>",
	Short: "Uncheck one entry and apply immediately",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEntry(args[0], false)
	},
}

// setEntry flips a single entry by identifier and persists the whole
// selection, the same write path the interactive apply uses.
func setEntry(identifier string, checked bool) error {
	cfg, store, model, loaded, err := loadCatalog()
	if err != nil {
		return err
	}

	row := model.Find(identifier)
	if row == nil {
		return fmt.Errorf("no entry %q; run 'svcmenu list' for identifiers", identifier)
	}
	if row.Checked == checked {
		fmt.Printf("%s %s already\n", row.DisplayText, stateWord(checked))
		return nil
	}

	model.SetChecked(identifier, checked)
	if err := applySelections(cfg, store, model, &loaded); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", row.DisplayText, stateWord(checked))
	return nil
}

func stateWord(checked bool) string {
	if checked {
		return "enabled"
	}
	return "disabled"
}

func ToggleInit() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}
