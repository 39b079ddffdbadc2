package main

import (
	"github.com/spf13/cobra"
)

func createValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the hook configuration",
		Long: `Load and validate the hook configuration file, reporting the first
problem found.

Examples:
  hm validate`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newHM()
			if err != nil {
				return err
			}

			return manager.ValidateConfig()
		},
	}

	return validateCmd
}
