package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"svcmenu/internal/config"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List the configuration snapshots taken before each apply",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		snapshots, err := cfg.Backups().List()
		if err != nil {
			return err
		}
		if len(snapshots) == 0 {
			fmt.Println("No snapshots yet; one is taken on every apply")
			return nil
		}
		for _, snap := range snapshots {
			fmt.Printf("%-24s %s  %d files\n", snap.ID, snap.Created.Format("2006-01-02 15:04:05"), len(snap.Files))
		}
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Restore a snapshot, the most recent one when no id is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		backups := cfg.Backups()

		var id string
		if len(args) == 1 {
			id = args[0]
		} else {
			latest, ok, err := backups.Latest()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no snapshots to restore")
			}
			id = latest.ID
		}

		if err := backups.Restore(id, cfg.Store()); err != nil {
			return err
		}
		fmt.Printf("Restored snapshot %s\n", id)
		return nil
	},
}

func SnapshotsInit() {
	rootCmd.AddCommand(snapshotsCmd)
	snapshotsCmd.AddCommand(restoreCmd)
}
