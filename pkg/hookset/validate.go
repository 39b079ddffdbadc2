package hookset

import (
	"fmt"
	"regexp"

	"github.com/lerenn/hook-manager/pkg/filetype"
)

// Validate checks the hook set and compiles every hook's file filter.
// After a successful Validate each hook classifies any candidate path
// deterministically as included or excluded.
func (c *Config) Validate() error {
	for _, stage := range c.DefaultStages {
		if !validStage(stage) {
			return fmt.Errorf("%w: %s", ErrUnknownStage, stage)
		}
	}

	for i := range c.Repos {
		if err := c.Repos[i].validate(); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repo) validate() error {
	if r.Repo == "" {
		return ErrMissingRepoURL
	}
	if !r.IsLocal() && r.Rev == "" {
		return fmt.Errorf("%w: %s", ErrMissingRev, r.Repo)
	}

	seen := make(map[string]struct{})
	for i := range r.Hooks {
		hook := &r.Hooks[i]
		if err := hook.validate(); err != nil {
			return err
		}
		if _, ok := seen[hook.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateHookID, hook.ID)
		}
		seen[hook.ID] = struct{}{}
	}

	return nil
}

func (h *Hook) validate() error {
	if h.ID == "" {
		return ErrMissingHookID
	}

	switch h.LanguageOrDefault() {
	case LanguageSystem, LanguageScript, LanguagePython:
		if h.Entry == "" {
			return fmt.Errorf("%w: %s", ErrMissingEntry, h.ID)
		}
	case LanguageFail:
		// Entry is the failure message, optional.
	default:
		return fmt.Errorf("%w: %s (hook %s)", ErrUnknownLanguage, h.Language, h.ID)
	}

	for _, tag := range h.Types {
		if !filetype.Known(tag) {
			return fmt.Errorf("%w: %s (hook %s)", ErrUnknownType, tag, h.ID)
		}
	}
	for _, tag := range h.TypesOr {
		if !filetype.Known(tag) {
			return fmt.Errorf("%w: %s (hook %s)", ErrUnknownType, tag, h.ID)
		}
	}

	for _, stage := range h.Stages {
		if !validStage(stage) {
			return fmt.Errorf("%w: %s (hook %s)", ErrUnknownStage, stage, h.ID)
		}
	}

	if h.Files != "" {
		re, err := regexp.Compile(h.Files)
		if err != nil {
			return fmt.Errorf("%w: %s (hook %s): %w", ErrInvalidFiles, h.Files, h.ID, err)
		}
		h.filesRe = re
	}
	if h.Exclude != "" {
		re, err := regexp.Compile(h.Exclude)
		if err != nil {
			return fmt.Errorf("%w: %s (hook %s): %w", ErrInvalidExclude, h.Exclude, h.ID, err)
		}
		h.excludeRe = re
	}

	return nil
}

func validStage(stage string) bool {
	switch stage {
	case StagePreCommit, StagePrePush, StageCommitMsg:
		return true
	}
	return false
}
