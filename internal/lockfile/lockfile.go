// Package lockfile removes lockfiles that belong to other package managers.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"create-anchor-app/internal/pm"
)

// Prune deletes every known lockfile in dir except the one belonging to
// keep. Templates ship with a lockfile for their default package manager;
// a stale lockfile from another manager would confuse the install step.
// Missing files are skipped.
func Prune(dir string, keep pm.PackageManager) error {
	for _, name := range pm.LockFiles() {
		if name == keep.LockFile {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}
