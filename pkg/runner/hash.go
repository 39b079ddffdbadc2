package runner

import (
	"crypto/sha256"
	"path/filepath"
)

// snapshotFiles hashes the given files so the runner can detect hooks
// that edit files in place (formatters). Missing files hash to an empty
// marker so create/delete also registers as a modification.
func (r *realRunner) snapshotFiles(files []string) map[string][32]byte {
	snapshot := make(map[string][32]byte, len(files))
	for _, file := range files {
		data, err := r.fs.ReadFile(filepath.Join(r.repoRoot, file))
		if err != nil {
			snapshot[file] = [32]byte{}
			continue
		}
		snapshot[file] = sha256.Sum256(data)
	}
	return snapshot
}

// filesModified reports whether any file's hash changed since the snapshot.
func (r *realRunner) filesModified(before map[string][32]byte, files []string) bool {
	after := r.snapshotFiles(files)
	for file, hash := range before {
		if after[file] != hash {
			return true
		}
	}
	return false
}
