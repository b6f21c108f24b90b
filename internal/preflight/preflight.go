// Package preflight verifies the developer toolchain before scaffolding.
package preflight

import (
	"context"
	"strings"

	"create-anchor-app/internal/execx"
)

// Tool is an external toolchain dependency checked before any file is
// written.
type Tool struct {
	Name       string
	Args       []string
	InstallURL string
}

// Tools is the fixed set of required toolchain binaries.
var Tools = []Tool{
	{Name: "rustc", Args: []string{"--version"}, InstallURL: "https://www.rust-lang.org/tools/install"},
	{Name: "cargo", Args: []string{"--version"}, InstallURL: "https://doc.rust-lang.org/cargo/getting-started/installation.html"},
	{Name: "solana", Args: []string{"--version"}, InstallURL: "https://docs.solanalabs.com/cli/install"},
	{Name: "anchor", Args: []string{"--version"}, InstallURL: "https://www.anchor-lang.com/docs/installation"},
}

// Status is the check result for one tool.
type Status struct {
	Tool    Tool
	Found   bool
	Version string
}

// Report aggregates the results for every tool, found or not, so all
// missing tools can be reported in one pass instead of failing on the
// first.
type Report struct {
	Statuses []Status
}

// Missing returns the statuses of tools that were not found.
func (r Report) Missing() []Status {
	var missing []Status
	for _, s := range r.Statuses {
		if !s.Found {
			missing = append(missing, s)
		}
	}
	return missing
}

// Check runs every tool's version command through the runner and collects
// the results. A tool counts as present when its command executes and exits
// zero; its version is the first line of stdout.
func Check(ctx context.Context, runner execx.Runner) Report {
	report := Report{Statuses: make([]Status, 0, len(Tools))}
	for _, tool := range Tools {
		status := Status{Tool: tool}
		res, err := runner.Run(ctx, tool.Name, tool.Args, execx.Options{})
		if err == nil && res.ExitCode == 0 {
			status.Found = true
			status.Version = firstLine(res.Stdout)
		}
		report.Statuses = append(report.Statuses, status)
	}
	return report
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
