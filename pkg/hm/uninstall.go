package hm

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/lerenn/hook-manager/pkg/hookset"
	"github.com/lerenn/hook-manager/pkg/store"
)

// UninstallOpts contains optional parameters for Uninstall.
type UninstallOpts struct {
	// Stage is the Git hook stage to uninstall (defaults to pre-commit).
	Stage string
}

// Uninstall removes a Git hook shim previously written by hm. Hooks not
// written by hm are left untouched.
func (h *realHM) Uninstall(opts UninstallOpts) error {
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

	exists, err := h.deps.FS.Exists(shimPath)
	if err != nil {
		return fmt.Errorf("failed to check existing hook: %w", err)
	}

	if exists {
		own, err := h.ownShim(shimPath)
		if err != nil {
			return err
		}
		if !own {
			return fmt.Errorf("%w: %s", ErrForeignHook, shimPath)
		}

		h.VerbosePrint("Removing %s shim at %s", stage, shimPath)
		if err := h.deps.FS.Remove(shimPath); err != nil {
			return fmt.Errorf("failed to remove hook shim: %w", err)
		}
	} else if !h.installRecorded(root, stage) {
		// Neither a shim on disk nor a recorded install: nothing to do.
		h.print("No %s hook installed\n", stage)
		return nil
	}

	if err := h.deps.StoreManager.RemoveInstall(root, stage); err != nil &&
		!errors.Is(err, store.ErrInstallNotFound) {
		return fmt.Errorf("failed to update install record: %w", err)
	}

	h.print("Uninstalled %s hook\n", stage)
	return nil
}

// installRecorded reports whether the status file records a shim for the
// stage in this repository.
func (h *realHM) installRecorded(repoRoot, stage string) bool {
	install, err := h.deps.StoreManager.GetInstall(repoRoot)
	if err != nil {
		return false
	}
	return slices.Contains(install.Stages, stage)
}
