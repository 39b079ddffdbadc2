package main

import (
	"github.com/lerenn/hook-manager/pkg/hm"
	"github.com/spf13/cobra"
)

var uninstallStage string

func createUninstallCmd() *cobra.Command {
	uninstallCmd := &cobra.Command{
		Use:   "uninstall [--stage <stage>]",
		Short: "Remove the Git hook shim for a stage",
		Long: `Remove the Git hook shim hm wrote for a stage. Hooks not written by hm
are left untouched.

Examples:
  hm uninstall
  hm uninstall --stage pre-push`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newHM()
			if err != nil {
				return err
			}

			return manager.Uninstall(hm.UninstallOpts{
				Stage: uninstallStage,
			})
		},
	}

	// Add flags
	uninstallCmd.Flags().StringVar(&uninstallStage, "stage", "", "Git hook stage to uninstall (defaults to pre-commit)")

	return uninstallCmd
}
