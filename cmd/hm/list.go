package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List configured hooks",
		Long: `List the configured hooks in configuration order, with their
repository, language and stages.

Examples:
  hm list`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newHM()
			if err != nil {
				return err
			}

			hooks, err := manager.ListHooks()
			if err != nil {
				return err
			}

			if len(hooks) == 0 {
				if !quiet {
					fmt.Println("No hooks configured")
				}
				return nil
			}

			for _, hook := range hooks {
				source := hook.Repo
				if hook.Rev != "" {
					source = fmt.Sprintf("%s@%s", hook.Repo, hook.Rev)
				}
				stages := "all stages"
				if len(hook.Stages) > 0 {
					stages = strings.Join(hook.Stages, ", ")
				}
				fmt.Printf("%s (%s) [%s] %s - %s\n", hook.ID, hook.Name, hook.Language, stages, source)
			}
			return nil
		},
	}

	return listCmd
}
