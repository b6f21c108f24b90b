// Package scaffold orchestrates project creation: copy, patch, prune,
// git init, install.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"create-anchor-app/internal/copier"
	"create-anchor-app/internal/execx"
	"create-anchor-app/internal/lockfile"
	"create-anchor-app/internal/patch"
	"create-anchor-app/internal/pm"
	"create-anchor-app/internal/project"
)

// ErrTargetNotEmpty means the requested project directory already exists
// and contains files. Nothing is written in that case.
var ErrTargetNotEmpty = errors.New("target directory already exists and is not empty")

var warn = color.New(color.FgYellow)

// Scaffolder runs the post-prompt scaffolding sequence. Every step is
// sequential; the only external effects are files under the target
// directory and the git/install subprocesses.
type Scaffolder struct {
	Runner execx.Runner
	Out    io.Writer
	Dir    string // base directory for the target; defaults to the cwd
}

func New(runner execx.Runner, out io.Writer) *Scaffolder {
	return &Scaffolder{Runner: runner, Out: out}
}

// Create scaffolds the project described by req from the template tree src
// and returns the absolute target directory. The target must not exist or
// must be empty; an empty directory is reused. Patch steps for files a
// template may legitimately lack (package.json, Anchor.toml) degrade to
// warnings. A git init failure is a warning; a dependency install failure
// is fatal. No step is retried.
func (s *Scaffolder) Create(ctx context.Context, src fs.FS, req project.Request, p pm.PackageManager) (string, error) {
	base := s.Dir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		base = wd
	}
	target := filepath.Join(base, req.Name)
	if err := ensureUsableTarget(target); err != nil {
		return "", err
	}

	fmt.Fprintf(s.Out, "Creating %s...\n", req.Name)
	if err := copier.CopyTree(src, target); err != nil {
		return "", err
	}

	if err := patch.PackageJSONName(filepath.Join(target, "package.json"), req.Name); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		warn.Fprintln(s.Out, "warning: template has no package.json to patch")
	}
	if err := patch.AnchorToml(filepath.Join(target, "Anchor.toml"), p); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		warn.Fprintln(s.Out, "warning: template has no Anchor.toml to patch")
	}

	if err := lockfile.Prune(target, p); err != nil {
		return "", err
	}

	fmt.Fprintln(s.Out, "Initializing git repository...")
	if err := s.Runner.RunStreamed(ctx, "git", []string{"init"}, execx.Options{Dir: target}); err != nil {
		// A missing or broken git should not block scaffolding.
		warn.Fprintf(s.Out, "warning: git init failed: %v\n", err)
	}

	fmt.Fprintf(s.Out, "Installing dependencies with %s...\n", p.Name)
	bin, args := p.InstallArgv()
	if err := s.Runner.RunStreamed(ctx, bin, args, execx.Options{Dir: target}); err != nil {
		return "", fmt.Errorf("dependency install failed: %w", err)
	}

	return target, nil
}

func ensureUsableTarget(dir string) error {
	entries, err := os.ReadDir(dir)
	switch {
	case err == nil:
		if len(entries) > 0 {
			return fmt.Errorf("%w: %s", ErrTargetNotEmpty, dir)
		}
		return nil
	case os.IsNotExist(err):
		return nil
	default:
		return fmt.Errorf("check target directory: %w", err)
	}
}
