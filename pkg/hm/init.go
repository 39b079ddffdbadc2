package hm

import (
	"fmt"

	"github.com/lerenn/hook-manager/configs"
)

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	// Force overwrites an existing configuration without confirmation.
	Force bool
}

// Init writes a starter hook configuration file at the repository root.
func (h *realHM) Init(opts InitOpts) error {
	root, err := h.repositoryRoot()
	if err != nil {
		return err
	}
	path := h.hookSetPath(root)

	exists, err := h.deps.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check existing configuration: %w", err)
	}
	if exists && !opts.Force {
		confirmed, err := h.deps.Prompt.PromptForConfirmation(
			fmt.Sprintf("%s already exists. Overwrite?", path), false)
		if err != nil {
			return fmt.Errorf("failed to get user confirmation: %w", err)
		}
		if !confirmed {
			return ErrInitCancelled
		}
	}

	h.VerbosePrint("Writing starter configuration to %s", path)

	if err := h.deps.FS.CreateFileWithContent(path, configs.SampleHookSet, 0644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	h.print("Wrote %s\n", path)
	return nil
}
