package main

import (
	"github.com/lerenn/hook-manager/pkg/hm"
	"github.com/spf13/cobra"
)

var initForce bool

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write a starter hook configuration",
		Long: `Write a starter .pre-commit-config.yaml at the repository root.
An existing configuration is only overwritten with --force or after
confirmation.

Examples:
  hm init
  hm init --force`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newHM()
			if err != nil {
				return err
			}

			return manager.Init(hm.InitOpts{
				Force: initForce,
			})
		},
	}

	// Add flags
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration without confirmation")

	return initCmd
}
