package testutil

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/vertti/medic-rust/pkg/runner"
)

// Call records one Run or RunStreaming invocation on a MockRunner.
type Call struct {
	Name      string
	Args      []string
	Streaming bool
}

// String renders the call as a command line, e.g. "cargo fmt --check".
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// MockRunner is a test double for runner.Runner.
// Nil functions fall back to: every tool found, every command succeeding
// with no output, and streaming commands producing no lines.
type MockRunner struct {
	LookPathFunc     func(file string) (string, error)
	RunFunc          func(name string, args ...string) (runner.Outcome, error)
	RunStreamingFunc func(sink runner.LineSink, name string, args ...string) (runner.Outcome, error)

	Calls []Call
}

func (m *MockRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/local/bin/" + file, nil
}

func (m *MockRunner) Run(name string, args ...string) (runner.Outcome, error) {
	m.Calls = append(m.Calls, Call{Name: name, Args: args})
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return runner.Outcome{Success: true}, nil
}

func (m *MockRunner) RunStreaming(sink runner.LineSink, name string, args ...string) (runner.Outcome, error) {
	m.Calls = append(m.Calls, Call{Name: name, Args: args, Streaming: true})
	if m.RunStreamingFunc != nil {
		return m.RunStreamingFunc(sink, name, args...)
	}
	return runner.Outcome{Success: true}, nil
}

// CommandLines returns every recorded call rendered as a command line.
func (m *MockRunner) CommandLines() []string {
	lines := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		lines[i] = c.String()
	}
	return lines
}

// Missing returns a LookPath function that reports the given tools as absent.
func Missing(tools ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, t := range tools {
			if t == file {
				return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
			}
		}
		return "/usr/local/bin/" + file, nil
	}
}

// LaunchFailure returns the error a runner reports for a program that cannot be spawned.
func LaunchFailure(name string, args ...string) error {
	return &runner.LaunchError{Name: name, Args: args, Err: errors.New("executable file not found in $PATH")}
}

// Succeeded returns an Outcome for a zero exit with the given output.
func Succeeded(stdout, stderr string) runner.Outcome {
	return runner.Outcome{Success: true, Stdout: stdout, Stderr: stderr}
}

// Exited returns an Outcome for a non-zero exit with the given output.
func Exited(code int, stdout, stderr string) runner.Outcome {
	return runner.Outcome{Success: false, ExitCode: code, Stdout: stdout, Stderr: stderr}
}

// Ptr returns a pointer to the value (useful for optional fields in tests).
func Ptr[T any](v T) *T {
	return &v
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
