// Package execx wraps external command execution behind an interface so
// the scaffolding flow can be tested without spawning real toolchains.
package execx

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// Options holds optional parameters for a command invocation.
type Options struct {
	Dir string // working directory
}

// Result holds the outcome of a captured command invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs external commands. Run captures output and reports non-zero
// exits through Result; RunStreamed forwards output to the console and
// reports non-zero exits as errors. Neither applies a timeout: a hung
// external process hangs the caller.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
	RunStreamed(ctx context.Context, name string, args []string, opts Options) error
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive streamed output. They default to the
	// process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes the command and captures stdout/stderr. A process that ran
// but exited non-zero is reported through Result.ExitCode, not as an error;
// errors mean the command could not be executed at all (binary not found,
// context canceled).
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

// RunStreamed executes the command with stdout/stderr wired to the console.
func (r *ExecRunner) RunStreamed(ctx context.Context, name string, args []string, opts Options) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
