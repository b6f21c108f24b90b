// Package template holds the embedded starter-kit catalog.
package template

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed all:templates
var templatesFS embed.FS

// Info describes one starter kit in the catalog.
type Info struct {
	Value       string `yaml:"value"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type catalogFile struct {
	Templates []Info `yaml:"templates"`
}

var (
	loadOnce sync.Once
	catalog  []Info
	loadErr  error
)

// Catalog returns the template descriptors in display order.
func Catalog() ([]Info, error) {
	loadOnce.Do(func() {
		data, err := templatesFS.ReadFile("templates/catalog.yaml")
		if err != nil {
			loadErr = fmt.Errorf("read template catalog: %w", err)
			return
		}
		var cf catalogFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			loadErr = fmt.Errorf("parse template catalog: %w", err)
			return
		}
		catalog = cf.Templates
	})
	return catalog, loadErr
}

// Get looks up a template descriptor by its identifier.
func Get(value string) (Info, error) {
	infos, err := Catalog()
	if err != nil {
		return Info{}, err
	}
	for _, info := range infos {
		if info.Value == value {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("template %q not found", value)
}

// Files returns the file tree of a template, rooted at the template
// directory, ready for the copier.
func Files(value string) (fs.FS, error) {
	if _, err := Get(value); err != nil {
		return nil, err
	}
	sub, err := fs.Sub(templatesFS, "templates/"+value)
	if err != nil {
		return nil, fmt.Errorf("template directory missing for %q: %w", value, err)
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil, fmt.Errorf("template directory missing for %q: %w", value, err)
	}
	return sub, nil
}
