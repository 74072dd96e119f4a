package generate

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write writes every file under targetDir, creating missing directories and overwriting
// existing files. It stops at the first failure and doesn't clean up files already written.
func Write(targetDir string, files FileSet) error {
	for _, rel := range files.Paths() {
		path := filepath.Join(targetDir, filepath.FromSlash(rel))

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("making directories %s: %w", dir, err)
		}

		if err := os.WriteFile(path, []byte(files[rel]), 0644); err != nil {
			return fmt.Errorf("writing file %s: %w", path, err)
		}
	}

	return nil
}
