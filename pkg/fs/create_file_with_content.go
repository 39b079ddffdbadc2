package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateFileWithContent creates a file with content and permissions.
func (f *realFS) CreateFileWithContent(path string, content []byte, perm os.FileMode) error {
	// Ensure the parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	// WriteFile does not update permissions on pre-existing files.
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	return nil
}
