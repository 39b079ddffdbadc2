package hm

import (
	"errors"
	"fmt"

	"github.com/lerenn/hook-manager/pkg/forge"
)

// AutoupdateOpts contains optional parameters for Autoupdate.
type AutoupdateOpts struct {
	// DryRun reports available updates without rewriting the configuration.
	DryRun bool
}

// RepoUpdate describes the outcome of updating one remote repo entry.
type RepoUpdate struct {
	Repo    string
	OldRev  string
	NewRev  string
	Skipped bool
	Reason  string
}

// Autoupdate updates pinned revisions of remote hook repositories to the
// latest release tag of their forge.
func (h *realHM) Autoupdate(opts AutoupdateOpts) ([]RepoUpdate, error) {
	root, err := h.repositoryRoot()
	if err != nil {
		return nil, err
	}

	cfg, path, err := h.loadHookSet(root)
	if err != nil {
		return nil, err
	}

	var updates []RepoUpdate
	changed := false

	for i := range cfg.Repos {
		repo := &cfg.Repos[i]
		if repo.IsLocal() {
			continue
		}

		f, err := h.deps.ForgeManager.GetForgeForURL(repo.Repo)
		if err != nil {
			if errors.Is(err, forge.ErrUnsupportedForge) {
				updates = append(updates, RepoUpdate{
					Repo:    repo.Repo,
					OldRev:  repo.Rev,
					Skipped: true,
					Reason:  "unsupported forge",
				})
				h.print("%s: skipped (unsupported forge)\n", repo.Repo)
				continue
			}
			return updates, err
		}

		latest, err := f.LatestRev(repo.Repo)
		if err != nil {
			return updates, fmt.Errorf("failed to resolve latest revision of %s: %w", repo.Repo, err)
		}

		if latest == repo.Rev {
			h.VerbosePrint("%s already at %s", repo.Repo, repo.Rev)
			continue
		}

		updates = append(updates, RepoUpdate{
			Repo:   repo.Repo,
			OldRev: repo.Rev,
			NewRev: latest,
		})
		h.print("%s: %s -> %s\n", repo.Repo, repo.Rev, latest)

		if !opts.DryRun {
			repo.Rev = latest
			changed = true
		}
	}

	if changed {
		if err := h.deps.HookSetManager.Save(path, cfg); err != nil {
			return updates, fmt.Errorf("failed to save updated configuration: %w", err)
		}
	}

	return updates, nil
}
