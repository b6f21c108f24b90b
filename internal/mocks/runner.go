// Package mocks provides test doubles for the execx.Runner interface.
package mocks

import (
	"context"
	"fmt"
	"strings"

	"create-anchor-app/internal/execx"
)

// Call records one invocation made through the fake runner.
type Call struct {
	Name     string
	Args     []string
	Dir      string
	Streamed bool
}

// Response is the canned outcome for a command, keyed by binary name.
type Response struct {
	Result execx.Result
	Err    error
}

// FakeRunner is an execx.Runner that records calls and replays canned
// responses instead of spawning processes. Commands without a canned
// response succeed with empty output.
type FakeRunner struct {
	Responses map[string]Response
	Calls     []Call
}

func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]Response)}
}

func (f *FakeRunner) Run(ctx context.Context, name string, args []string, opts execx.Options) (execx.Result, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args, Dir: opts.Dir})
	if resp, ok := f.Responses[name]; ok {
		return resp.Result, resp.Err
	}
	return execx.Result{}, nil
}

func (f *FakeRunner) RunStreamed(ctx context.Context, name string, args []string, opts execx.Options) error {
	f.Calls = append(f.Calls, Call{Name: name, Args: args, Dir: opts.Dir, Streamed: true})
	if resp, ok := f.Responses[name]; ok {
		if resp.Err != nil {
			return resp.Err
		}
		if resp.Result.ExitCode != 0 {
			return fmt.Errorf("exit status %d", resp.Result.ExitCode)
		}
	}
	return nil
}

// CommandLines renders the recorded calls as "name arg ..." strings for
// simple assertions.
func (f *FakeRunner) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, strings.TrimSpace(c.Name+" "+strings.Join(c.Args, " ")))
	}
	return lines
}
