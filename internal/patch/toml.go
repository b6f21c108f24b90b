package patch

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"create-anchor-app/internal/pm"
)

var packageManagerLine = regexp.MustCompile(`(?m)^package_manager\s*=.*$`)

// testInvocation matches the run-script prefix of an Anchor test command,
// e.g. "yarn run ts-mocha". Built from the fixed package-manager table.
var testInvocation = regexp.MustCompile(`(` + strings.Join(pm.RunCommands(), "|") + `) ts-mocha`)

type anchorToolchain struct {
	Toolchain struct {
		PackageManager string `toml:"package_manager"`
	} `toml:"toolchain"`
}

// AnchorToml rewrites the toolchain package_manager key and the test
// command of an Anchor.toml to match the detected package manager. The
// patch is a textual line substitution: comments, formatting, and unrelated
// sections pass through byte for byte. The patched text must still decode
// as TOML or the file is left unmodified. A missing file surfaces as an
// error wrapping fs.ErrNotExist for the caller to degrade to a warning.
func AnchorToml(path string, p pm.PackageManager) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read Anchor.toml: %w", err)
	}

	patched := string(data)
	if loc := packageManagerLine.FindStringIndex(patched); loc != nil {
		patched = patched[:loc[0]] + `package_manager = "` + p.Name + `"` + patched[loc[1]:]
	}
	patched = testInvocation.ReplaceAllString(patched, p.RunCommand+" ts-mocha")

	var cfg anchorToolchain
	if _, err := toml.Decode(patched, &cfg); err != nil {
		return fmt.Errorf("patched %s is not valid TOML: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
