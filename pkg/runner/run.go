package runner

import (
	"fmt"
	"strings"

	"github.com/lerenn/hook-manager/pkg/hookset"
)

// Run executes the applicable hooks of cfg in order and returns a report.
func (r *realRunner) Run(cfg *hookset.Config, opts RunOptions) (*Report, error) {
	stage := opts.Stage
	if stage == "" {
		stage = hookset.StagePreCommit
	}

	if opts.HookID != "" {
		if _, _, err := cfg.FindHook(opts.HookID); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrHookNotFound, opts.HookID)
		}
	}

	report := &Report{}

	for i := range cfg.Repos {
		repo := &cfg.Repos[i]
		for j := range repo.Hooks {
			hook := &repo.Hooks[j]

			if opts.HookID != "" && hook.ID != opts.HookID {
				continue
			}
			if !hook.RunsForStage(stage, cfg.DefaultStages) {
				continue
			}

			result, err := r.runHook(repo, hook, opts.Files)
			if err != nil {
				return nil, err
			}
			report.Results = append(report.Results, *result)

			// Fail-fast: the first failing hook aborts the sequence.
			if result.Status == StatusFailed && cfg.FailFast {
				return report, nil
			}
		}
	}

	return report, nil
}

// runHook executes one hook against the candidate files.
func (r *realRunner) runHook(repo *hookset.Repo, hook *hookset.Hook, candidates []string) (*HookResult, error) {
	result := &HookResult{ID: hook.ID, Name: hook.DisplayName()}

	matched := hook.FilterFiles(candidates)

	if len(matched) == 0 && hook.PassesFilenames() && !hook.AlwaysRun {
		r.logger.Logf("%s: skipped (no matching files)", hook.DisplayName())
		result.Status = StatusSkipped
		return result, nil
	}

	if hook.LanguageOrDefault() == hookset.LanguageFail {
		result.Status = StatusFailed
		result.ExitCode = 1
		message := hook.Entry
		if message == "" {
			message = hook.DisplayName()
		}
		result.Output = fmt.Sprintf("%s\n\n%s\n", message, strings.Join(matched, "\n"))
		r.logger.Errorf("%s: failed", hook.DisplayName())
		return result, nil
	}

	command, err := r.resolveEntry(repo, hook)
	if err != nil {
		return nil, err
	}

	args := append([]string{}, hook.Args...)
	if hook.PassesFilenames() {
		args = append(args, matched...)
	}

	before := r.snapshotFiles(matched)

	r.logger.Logf("%s: running %s", hook.DisplayName(), command)

	output, exitCode, err := r.executor.Execute(r.repoRoot, command, args)
	if err != nil {
		// The command could not be started at all; report it as the
		// hook's failure rather than an infrastructure error.
		result.Status = StatusFailed
		result.ExitCode = -1
		result.Output = err.Error()
		r.logger.Errorf("%s: failed (%v)", hook.DisplayName(), err)
		return result, nil
	}

	result.ExitCode = exitCode
	result.Output = string(output)
	result.FilesModified = r.filesModified(before, matched)

	switch {
	case exitCode != 0:
		result.Status = StatusFailed
		r.logger.Errorf("%s: failed (exit %d)", hook.DisplayName(), exitCode)
	case result.FilesModified:
		// A formatter rewrote files: the staged snapshot is stale, so the
		// run fails even though the command exited zero.
		result.Status = StatusFailed
		r.logger.Errorf("%s: failed (files were modified by this hook)", hook.DisplayName())
	default:
		result.Status = StatusPassed
		r.logger.Logf("%s: passed", hook.DisplayName())
	}

	if hook.Verbose && result.Output != "" {
		r.logger.Logf("%s", result.Output)
	}

	return result, nil
}
