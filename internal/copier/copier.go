// Package copier duplicates template trees onto disk.
package copier

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyTree recursively copies every file and directory in src to dst,
// preserving relative structure. Directories are created as needed; file
// contents are copied byte for byte. Symlinks and mode bits are out of
// scope. Sibling traversal order is not guaranteed. CopyTree does not
// guard against a non-empty dst; the caller does that before calling.
func CopyTree(src fs.FS, dst string) error {
	if _, err := fs.Stat(src, "."); err != nil {
		return fmt.Errorf("template source missing: %w", err)
	}

	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		data, err := fs.ReadFile(src, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}
		return nil
	})
}
