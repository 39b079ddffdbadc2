// Package main provides the command-line interface for the HM application.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/lerenn/hook-manager/pkg/config"
	"github.com/lerenn/hook-manager/pkg/hm"
	"github.com/lerenn/hook-manager/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	quiet       bool
	verbose     bool
	configPath  string
	hookSetFile string
)

// loadConfig loads the application configuration, falling back to defaults.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		path = filepath.Join(homeDir, ".hm", "config.yaml")
	}

	cfg, err := config.LoadConfigWithFallback(path)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", path, err)
	}
	return cfg
}

// newHM builds a hook manager instance wired to the loaded configuration.
func newHM() (hm.HM, error) {
	manager, err := hm.NewHM(hm.NewHMParams{
		Config:      loadConfig(),
		HookSetFile: hookSetFile,
		Quiet:       quiet,
	})
	if err != nil {
		return nil, err
	}

	if verbose && !quiet {
		manager.SetLogger(logger.NewDefaultLogger())
	}
	return manager, nil
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "hm",
		Short: "Hook Manager - declarative Git hook runner",
		Long: `A CLI tool for running declaratively configured Git hooks: ` +
			`it loads a .pre-commit-config.yaml hook set, filters candidate files ` +
			`per hook, and executes each hook in order with fail-fast semantics.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"Suppress all output except errors and hook failures")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&hookSetFile, "hook-config", "",
		"Specify a custom hook configuration file path")

	// Add subcommands
	rootCmd.AddCommand(
		createRunCmd(),
		createInstallCmd(),
		createUninstallCmd(),
		createListCmd(),
		createValidateCmd(),
		createAutoupdateCmd(),
		createInitCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
