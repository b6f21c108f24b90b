// Package pm detects which package manager invoked the tool.
package pm

import "strings"

// PackageManager describes a supported Node.js package manager.
type PackageManager struct {
	Name           string
	Version        string
	InstallCommand string
	RunCommand     string
	LockFile       string
}

var known = map[string]PackageManager{
	"npm":  {Name: "npm", InstallCommand: "npm install", RunCommand: "npm run", LockFile: "package-lock.json"},
	"yarn": {Name: "yarn", InstallCommand: "yarn install", RunCommand: "yarn run", LockFile: "yarn.lock"},
	"pnpm": {Name: "pnpm", InstallCommand: "pnpm install", RunCommand: "pnpm run", LockFile: "pnpm-lock.yaml"},
	"bun":  {Name: "bun", InstallCommand: "bun install", RunCommand: "bun run", LockFile: "bun.lockb"},
}

// Detect parses a user-agent string of the form "name/version ..." (the
// npm_config_user_agent convention) and returns the matching package
// manager. Unrecognized or empty input falls back to npm with an unknown
// version. Detect never reads the environment; the caller passes the
// string in.
func Detect(userAgent string) PackageManager {
	name, version := splitUserAgent(userAgent)
	p, ok := known[name]
	if !ok {
		p = known["npm"]
		p.Version = "unknown"
		return p
	}
	if version == "" {
		version = "unknown"
	}
	p.Version = version
	return p
}

func splitUserAgent(userAgent string) (name, version string) {
	first := userAgent
	if i := strings.IndexByte(first, ' '); i >= 0 {
		first = first[:i]
	}
	name, version, found := strings.Cut(first, "/")
	if !found {
		return name, ""
	}
	return name, version
}

// InstallArgv splits the install command into a binary and its arguments.
func (p PackageManager) InstallArgv() (string, []string) {
	fields := strings.Fields(p.InstallCommand)
	return fields[0], fields[1:]
}

// LockFiles returns the lockfile names of every supported package manager.
func LockFiles() []string {
	return []string{
		known["npm"].LockFile,
		known["yarn"].LockFile,
		known["pnpm"].LockFile,
		known["bun"].LockFile,
	}
}

// RunCommands returns the run-script invocations of every supported package
// manager, used by the Anchor.toml patcher to recognize test commands.
func RunCommands() []string {
	return []string{
		known["npm"].RunCommand,
		known["yarn"].RunCommand,
		known["pnpm"].RunCommand,
		known["bun"].RunCommand,
	}
}
