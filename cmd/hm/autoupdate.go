package main

import (
	"fmt"

	"github.com/lerenn/hook-manager/pkg/hm"
	"github.com/spf13/cobra"
)

var autoupdateDryRun bool

func createAutoupdateCmd() *cobra.Command {
	autoupdateCmd := &cobra.Command{
		Use:   "autoupdate [--dry-run]",
		Short: "Update pinned revisions of remote hook repositories",
		Long: `Update the pinned rev of each remote hook repository to its latest
release tag and rewrite the hook configuration file.

Examples:
  hm autoupdate
  hm autoupdate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newHM()
			if err != nil {
				return err
			}

			updates, err := manager.Autoupdate(hm.AutoupdateOpts{
				DryRun: autoupdateDryRun,
			})
			if err != nil {
				return err
			}

			if len(updates) == 0 && !quiet {
				fmt.Println("All hook repositories are up to date")
			}
			return nil
		},
	}

	// Add flags
	autoupdateCmd.Flags().BoolVar(&autoupdateDryRun, "dry-run", false,
		"Report available updates without rewriting the configuration")

	return autoupdateCmd
}
