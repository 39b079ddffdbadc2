package hm

import (
	"fmt"
	"strings"

	"github.com/lerenn/hook-manager/pkg/hookset"
	"github.com/lerenn/hook-manager/pkg/prompt"
	"github.com/lerenn/hook-manager/pkg/runner"
)

// RunOpts contains optional parameters for Run.
type RunOpts struct {
	// HookID restricts the run to a single hook.
	HookID string
	// Stage is the Git hook stage being run (defaults to pre-commit).
	Stage string
	// AllFiles runs against every tracked file instead of staged files.
	AllFiles bool
	// FilesGlob runs against files matching a doublestar glob pattern.
	FilesGlob string
	// Interactive opens a selector over the configured hooks.
	Interactive bool
}

// Run executes the configured hooks against candidate files.
func (h *realHM) Run(opts RunOpts) (*runner.Report, error) {
	root, err := h.repositoryRoot()
	if err != nil {
		return nil, err
	}

	cfg, _, err := h.loadHookSet(root)
	if err != nil {
		return nil, err
	}

	files, err := h.candidateFiles(root, opts)
	if err != nil {
		return nil, err
	}
	h.VerbosePrint("Running hooks against %d candidate file(s)", len(files))

	hookID := opts.HookID
	if opts.Interactive && hookID == "" {
		hookID, err = h.selectHook(cfg)
		if err != nil {
			return nil, err
		}
	}

	r := h.deps.RunnerProvider(runner.NewRunnerParams{
		FS:           h.deps.FS,
		Git:          h.deps.Git,
		StoreManager: h.deps.StoreManager,
		Config:       h.config,
		Logger:       h.deps.Logger,
		RepoRoot:     root,
	})

	report, err := r.Run(cfg, runner.RunOptions{
		Stage:  opts.Stage,
		HookID: hookID,
		Files:  files,
	})
	if err != nil {
		return nil, err
	}

	h.printReport(cfg, report)
	return report, nil
}

// candidateFiles computes the candidate file list for a run.
func (h *realHM) candidateFiles(repoRoot string, opts RunOpts) ([]string, error) {
	if opts.FilesGlob != "" {
		files, err := h.deps.FS.Glob(repoRoot, opts.FilesGlob)
		if err != nil {
			return nil, fmt.Errorf("failed to expand files pattern: %w", err)
		}
		return files, nil
	}

	if opts.AllFiles {
		files, err := h.deps.Git.TrackedFiles(repoRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to list tracked files: %w", err)
		}
		return files, nil
	}

	files, err := h.deps.Git.StagedFiles(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return files, nil
}

// selectHook prompts the user to pick one of the configured hooks.
func (h *realHM) selectHook(cfg *hookset.Config) (string, error) {
	var choices []prompt.HookChoice
	for _, repo := range cfg.Repos {
		for _, hook := range repo.Hooks {
			choices = append(choices, prompt.HookChoice{
				ID:   hook.ID,
				Name: hook.Name,
				Repo: repo.Repo,
			})
		}
	}
	if len(choices) == 0 {
		return "", ErrNoHooksConfigured
	}

	choice, err := h.deps.Prompt.PromptSelectHook(choices)
	if err != nil {
		return "", fmt.Errorf("failed to select hook: %w", err)
	}
	return choice.ID, nil
}

// printReport prints the outcome of each hook, then a failure summary.
func (h *realHM) printReport(cfg *hookset.Config, report *runner.Report) {
	verbose := make(map[string]bool)
	for _, repo := range cfg.Repos {
		for _, hook := range repo.Hooks {
			if hook.Verbose {
				verbose[hook.ID] = true
			}
		}
	}

	for _, result := range report.Results {
		name := result.Name
		if name == "" {
			name = result.ID
		}

		switch result.Status {
		case runner.StatusSkipped:
			h.print("%s: skipped (no matching files)\n", name)
		case runner.StatusPassed:
			h.print("%s: passed\n", name)
			if verbose[result.ID] && result.Output != "" {
				h.print("%s", ensureTrailingNewline(result.Output))
			}
		case runner.StatusFailed:
			if result.FilesModified && result.ExitCode == 0 {
				h.printAlways("%s: failed (files were modified by this hook)\n", name)
			} else {
				h.printAlways("%s: failed (exit code %d)\n", name, result.ExitCode)
			}
			if result.Output != "" {
				h.printAlways("%s", ensureTrailingNewline(result.Output))
			}
		}
	}

	if failure := report.FirstFailure(); failure != nil {
		h.printAlways("\nhook %q failed\n", failure.ID)
	}
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
