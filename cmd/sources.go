package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"svcmenu/internal/config"
	"svcmenu/internal/download"
)

var (
	sourceCategory    string
	sourceDescription string
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the repositories new services are fetched from",
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		sources, err := cfg.Sources().Load()
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			fmt.Println("No sources configured; add one with 'svcmenu sources add'")
			return nil
		}
		for _, src := range sources {
			fmt.Printf("%-20s %-16s %s\n", src.Name, src.Category, src.Repo)
			if src.Description != "" {
				fmt.Printf("%20s %s\n", "", src.Description)
			}
		}
		return nil
	},
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add <name> <repo-url>",
	Short: "Add a source repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		src := download.Source{
			Name:        args[0],
			Repo:        args[1],
			Category:    sourceCategory,
			Description: sourceDescription,
		}
		if err := cfg.Sources().Add(src); err != nil {
			return err
		}
		fmt.Printf("Added %s\n", src.Name)
		return nil
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a source repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Sources().Remove(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

func SourcesInit() {
	sourcesAddCmd.Flags().StringVar(&sourceCategory, "category", "", "entry category (servicemenus, fileitemactions, vcsplugins)")
	sourcesAddCmd.Flags().StringVar(&sourceDescription, "description", "", "free-form description")

	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesCmd.AddCommand(sourcesAddCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)
}
