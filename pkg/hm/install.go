package hm

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/hook-manager/pkg/hookset"
)

// shimMarker identifies shims written by hm.
const shimMarker = "# installed by hm"

// InstallOpts contains optional parameters for Install.
type InstallOpts struct {
	// Stage is the Git hook stage to install (defaults to pre-commit).
	Stage string
	// Force overwrites an existing hook without confirmation.
	Force bool
}

// Install writes a Git hook shim invoking hm for a stage.
func (h *realHM) Install(opts InstallOpts) error {
	stage := opts.Stage
	if stage == "" {
		stage = hookset.StagePreCommit
	}
	if !validStage(stage) {
		return fmt.Errorf("%w: %s", ErrUnknownStage, stage)
	}

	root, err := h.repositoryRoot()
	if err != nil {
		return err
	}

	hooksDir, err := h.deps.Git.HooksPath(root)
	if err != nil {
		return fmt.Errorf("failed to locate hooks directory: %w", err)
	}
	shimPath := filepath.Join(hooksDir, stage)

	if err := h.checkExistingHook(shimPath, opts.Force); err != nil {
		return err
	}

	h.VerbosePrint("Writing %s shim to %s", stage, shimPath)

	if err := h.deps.FS.CreateFileWithContent(shimPath, shimScript(stage), 0755); err != nil {
		return fmt.Errorf("failed to write hook shim: %w", err)
	}

	if err := h.deps.StoreManager.AddInstall(root, stage); err != nil {
		return fmt.Errorf("failed to record install: %w", err)
	}

	h.print("Installed %s hook\n", stage)
	return nil
}

// checkExistingHook refuses to clobber a hook hm did not write, unless
// forced or confirmed by the user.
func (h *realHM) checkExistingHook(shimPath string, force bool) error {
	exists, err := h.deps.FS.Exists(shimPath)
	if err != nil {
		return fmt.Errorf("failed to check existing hook: %w", err)
	}
	if !exists {
		return nil
	}

	own, err := h.ownShim(shimPath)
	if err != nil {
		return err
	}
	if own || force {
		return nil
	}

	confirmed, err := h.deps.Prompt.PromptForConfirmation(
		fmt.Sprintf("A hook not managed by hm exists at %s. Overwrite?", shimPath), false)
	if err != nil {
		return fmt.Errorf("failed to get user confirmation: %w", err)
	}
	if !confirmed {
		return fmt.Errorf("%w: %s", ErrForeignHook, shimPath)
	}
	return nil
}

// ownShim reports whether the file at path carries the hm shim marker.
func (h *realHM) ownShim(path string) (bool, error) {
	data, err := h.deps.FS.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read existing hook: %w", err)
	}
	return strings.Contains(string(data), shimMarker), nil
}

// shimScript renders the hook shim for a stage.
func shimScript(stage string) []byte {
	return []byte(fmt.Sprintf("#!/bin/sh\n%s\nexec hm run --hook-stage %s \"$@\"\n", shimMarker, stage))
}
