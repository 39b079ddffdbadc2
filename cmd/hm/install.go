package main

import (
	"github.com/lerenn/hook-manager/pkg/hm"
	"github.com/spf13/cobra"
)

var (
	installStage string
	installForce bool
)

func createInstallCmd() *cobra.Command {
	installCmd := &cobra.Command{
		Use:   "install [--stage <stage>] [--force]",
		Short: "Install the Git hook shim for a stage",
		Long: `Install a Git hook shim invoking hm into the repository's hooks directory.

An existing hook not written by hm is only overwritten with --force or
after confirmation.

Examples:
  hm install
  hm install --stage pre-push
  hm install --force`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newHM()
			if err != nil {
				return err
			}

			return manager.Install(hm.InstallOpts{
				Stage: installStage,
				Force: installForce,
			})
		},
	}

	// Add flags
	installCmd.Flags().StringVar(&installStage, "stage", "", "Git hook stage to install (defaults to pre-commit)")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Overwrite an existing hook without confirmation")

	return installCmd
}
