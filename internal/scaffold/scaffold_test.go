package scaffold

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"create-anchor-app/internal/execx"
	"create-anchor-app/internal/mocks"
	"create-anchor-app/internal/pm"
	"create-anchor-app/internal/project"
)

func templateFixture() fstest.MapFS {
	return fstest.MapFS{
		"package.json": {Data: []byte("{\n  \"name\": \"regular-counter\",\n  \"version\": \"0.1.0\"\n}\n")},
		"Anchor.toml": {Data: []byte(`[toolchain]
anchor_version = "0.30.1"
package_manager = "yarn"

[scripts]
test = "yarn run ts-mocha -p ./tsconfig.json -t 1000000 tests/**/*.ts"
`)},
		"yarn.lock":                   {Data: []byte("# yarn lockfile v1\n")},
		"package-lock.json":           {Data: []byte("{}")},
		"programs/counter/src/lib.rs": {Data: []byte("use anchor_lang::prelude::*;\n")},
	}
}

func newTestScaffolder(t *testing.T) (*Scaffolder, *mocks.FakeRunner, *bytes.Buffer) {
	t.Helper()
	runner := mocks.NewFakeRunner()
	var out bytes.Buffer
	return &Scaffolder{Runner: runner, Out: &out, Dir: t.TempDir()}, runner, &out
}

func TestCreate(t *testing.T) {
	s, runner, _ := newTestScaffolder(t)
	req, err := project.New("regular-counter", "my-app")
	require.NoError(t, err)
	manager := pm.Detect("pnpm/8.15.4")

	target, err := s.Create(context.Background(), templateFixture(), req, manager)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir, "my-app"), target)

	// Tree copied.
	assert.FileExists(t, filepath.Join(target, "programs", "counter", "src", "lib.rs"))

	// package.json name patched.
	data, err := os.ReadFile(filepath.Join(target, "package.json"))
	require.NoError(t, err)
	var pkg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &pkg))
	assert.Equal(t, "my-app", pkg["name"])
	assert.Equal(t, "0.1.0", pkg["version"])

	// Anchor.toml patched for the detected manager.
	toml, err := os.ReadFile(filepath.Join(target, "Anchor.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(toml), `package_manager = "pnpm"`)
	assert.Contains(t, string(toml), "pnpm run ts-mocha")

	// Foreign lockfiles pruned.
	assert.NoFileExists(t, filepath.Join(target, "yarn.lock"))
	assert.NoFileExists(t, filepath.Join(target, "package-lock.json"))

	// git init and install ran in the target, streamed.
	require.Len(t, runner.Calls, 2)
	assert.Equal(t, []string{"git init", "pnpm install"}, runner.CommandLines())
	for _, call := range runner.Calls {
		assert.Equal(t, target, call.Dir)
		assert.True(t, call.Streamed)
	}
}

func TestCreate_NonEmptyTarget(t *testing.T) {
	s, runner, _ := newTestScaffolder(t)
	existing := filepath.Join(s.Dir, "my-app")
	require.NoError(t, os.MkdirAll(existing, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(existing, "keep.txt"), []byte("keep"), 0644))

	req, err := project.New("regular-counter", "my-app")
	require.NoError(t, err)

	_, err = s.Create(context.Background(), templateFixture(), req, pm.Detect(""))
	require.ErrorIs(t, err, ErrTargetNotEmpty)

	// Nothing was written and nothing ran.
	entries, err := os.ReadDir(existing)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Empty(t, runner.Calls)
}

func TestCreate_EmptyTargetReused(t *testing.T) {
	s, _, _ := newTestScaffolder(t)
	require.NoError(t, os.MkdirAll(filepath.Join(s.Dir, "my-app"), 0755))

	req, err := project.New("regular-counter", "my-app")
	require.NoError(t, err)

	target, err := s.Create(context.Background(), templateFixture(), req, pm.Detect(""))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "package.json"))
}

func TestCreate_GitFailureIsWarning(t *testing.T) {
	s, runner, out := newTestScaffolder(t)
	runner.Responses["git"] = mocks.Response{Err: errors.New("exec: \"git\": executable file not found in $PATH")}

	req, err := project.New("regular-counter", "my-app")
	require.NoError(t, err)

	_, err = s.Create(context.Background(), templateFixture(), req, pm.Detect("yarn/1.22.22"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "git init failed")
}

func TestCreate_InstallFailureIsFatal(t *testing.T) {
	s, runner, _ := newTestScaffolder(t)
	runner.Responses["npm"] = mocks.Response{Result: execx.Result{ExitCode: 1}}

	req, err := project.New("regular-counter", "my-app")
	require.NoError(t, err)

	_, err = s.Create(context.Background(), templateFixture(), req, pm.Detect(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency install failed")
}

func TestCreate_MissingOptionalFilesWarn(t *testing.T) {
	s, _, out := newTestScaffolder(t)
	bare := fstest.MapFS{"README.md": {Data: []byte("# bare\n")}}

	req, err := project.New("bare", "my-app")
	require.NoError(t, err)

	_, err = s.Create(context.Background(), bare, req, pm.Detect(""))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no package.json")
	assert.Contains(t, out.String(), "no Anchor.toml")
}
