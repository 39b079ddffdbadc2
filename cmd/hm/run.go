package main

import (
	"fmt"

	"github.com/lerenn/hook-manager/pkg/hm"
	"github.com/spf13/cobra"
)

var (
	runStage       string
	runAllFiles    bool
	runFilesGlob   string
	runInteractive bool
)

func createRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [hook-id]",
		Short: "Run configured hooks against candidate files",
		Long: `Run the configured hooks in order against candidate files.

By default candidate files are the files staged for commit. Use --all-files
to run against every tracked file, or --files to select files with a glob.

Examples:
  hm run
  hm run ruff
  hm run --all-files
  hm run --files 'src/**/*.py'
  hm run --interactive`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, args []string) error {
			manager, err := newHM()
			if err != nil {
				return err
			}

			opts := hm.RunOpts{
				Stage:       runStage,
				AllFiles:    runAllFiles,
				FilesGlob:   runFilesGlob,
				Interactive: runInteractive,
			}
			if len(args) == 1 {
				opts.HookID = args[0]
			}

			report, err := manager.Run(opts)
			if err != nil {
				return err
			}
			if !report.Success() {
				return fmt.Errorf("hook run failed")
			}
			return nil
		},
	}

	// Add flags
	runCmd.Flags().StringVar(&runStage, "hook-stage", "", "Git hook stage being run (defaults to pre-commit)")
	runCmd.Flags().BoolVar(&runAllFiles, "all-files", false, "Run against all tracked files instead of staged files")
	runCmd.Flags().StringVar(&runFilesGlob, "files", "", "Run against files matching a glob pattern")
	runCmd.Flags().BoolVarP(&runInteractive, "interactive", "i", false, "Select the hook to run interactively")

	return runCmd
}
