package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var debugFlag bool

// tuiRunner launches the interactive list. It is injected from package main
// so the command tree does not pull in the whole UI.
var tuiRunner func(debug bool) error

// SetTUIRunner installs the interactive entry point invoked by the bare
// root command.
func SetTUIRunner(fn func(debug bool) error) {
	tuiRunner = fn
}

// SetVersion sets the string printed by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "svcmenu",
	Short: "Configure the file manager context menu",
	Long: "Browse and toggle the service menus, file item actions and version control\n" +
		"plugins that show up in the file manager context menu. Run without arguments\n" +
		"for the interactive list, or use the subcommands for scripting.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tuiRunner == nil {
			return fmt.Errorf("interactive mode is not available in this build")
		}
		return tuiRunner(debugFlag)
	},
}

func InitRoot() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print debug logging to stderr")

	ListInit()
	ToggleInit()
	DefaultsInit()
	SourcesInit()
	FetchInit()
	SnapshotsInit()
}

func Execute() error {
	InitRoot()
	return rootCmd.Execute()
}
