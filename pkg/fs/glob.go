package fs

import (
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob finds files matching the doublestar pattern, relative to root.
// Only regular files are returned; matches are relative to root with
// forward slashes, matching the path form Git produces.
func (f *realFS) Glob(root, pattern string) ([]string, error) {
	fsys := os.DirFS(root)

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, match := range matches {
		info, err := fs.Stat(fsys, match)
		if err != nil {
			return nil, err
		}
		if info.Mode().IsRegular() {
			files = append(files, match)
		}
	}

	return files, nil
}
