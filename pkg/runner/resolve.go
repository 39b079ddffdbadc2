package runner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/hook-manager/pkg/hookset"
	"github.com/lerenn/hook-manager/pkg/store"
)

// resolveEntry maps a hook to the command to execute, following the
// language tag:
//   - system and python entries resolve from PATH;
//   - script entries resolve relative to the repository root for local
//     hooks, or inside the clone of repo@rev for external ones.
func (r *realRunner) resolveEntry(repo *hookset.Repo, hook *hookset.Hook) (string, error) {
	switch hook.LanguageOrDefault() {
	case hookset.LanguageSystem:
		return r.resolveFromPath(hook)
	case hookset.LanguagePython:
		// No managed environments: python hooks resolve like system ones.
		r.logger.Logf("hook %s: python environments are not managed, resolving %s from PATH",
			hook.ID, hook.Entry)
		return r.resolveFromPath(hook)
	case hookset.LanguageScript:
		if repo.IsLocal() {
			return filepath.Join(r.repoRoot, hook.Entry), nil
		}
		clonePath, err := r.ensureClone(repo)
		if err != nil {
			return "", err
		}
		return filepath.Join(clonePath, hook.Entry), nil
	default:
		return "", fmt.Errorf("%w: hook %s has language %s", ErrEntryResolution, hook.ID, hook.Language)
	}
}

// resolveFromPath locates the hook's entry on the system PATH.
func (r *realRunner) resolveFromPath(hook *hookset.Hook) (string, error) {
	command, err := r.fs.Which(hook.Entry)
	if err != nil {
		return "", fmt.Errorf("%w: hook %s: %w", ErrEntryResolution, hook.ID, err)
	}
	return command, nil
}

// ensureClone returns the path of the clone for repo at its pinned rev,
// cloning and recording it on first use.
func (r *realRunner) ensureClone(repo *hookset.Repo) (string, error) {
	clone, err := r.storeManager.GetClone(repo.Repo, repo.Rev)
	if err == nil {
		return clone.Path, nil
	}
	if !errors.Is(err, store.ErrCloneNotFound) {
		return "", err
	}

	clonePath := filepath.Join(r.config.ReposPath(), cloneDirName(repo.Repo, repo.Rev))

	r.logger.Logf("cloning %s at %s", repo.Repo, repo.Rev)

	if err := r.fs.MkdirAll(r.config.ReposPath(), 0755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}
	if err := r.git.Clone(repo.Repo, clonePath); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}
	if err := r.git.Checkout(clonePath, repo.Rev); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	if err := r.storeManager.AddClone(store.Clone{
		URL:  repo.Repo,
		Rev:  repo.Rev,
		Path: clonePath,
	}); err != nil {
		return "", err
	}

	return clonePath, nil
}

// cloneDirName builds a stable directory name for a repo URL at a rev.
func cloneDirName(url, rev string) string {
	name := strings.TrimSuffix(url, ".git")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		name = "repo"
	}
	return fmt.Sprintf("%s-%s", name, rev)
}
