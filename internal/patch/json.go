// Package patch rewrites project metadata inside a freshly copied template.
package patch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iancoleman/orderedmap"
)

// PackageJSONName sets the "name" field of a package.json-shaped file and
// writes it back with 2-space indentation. Every other field passes through
// untouched, in its original order; the file's shape is opaque beyond the
// one key. The caller decides how to treat a missing file (the error wraps
// fs.ErrNotExist).
func PackageJSONName(path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read package.json: %w", err)
	}

	pkg := orderedmap.New()
	if err := json.Unmarshal(data, pkg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	pkg.Set("name", name)

	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
