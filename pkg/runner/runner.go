// Package runner runs the external tools wrapped by the checks.
//
// Two modes are provided. Run buffers both output streams until the
// process exits and suits short commands with bounded output. RunStreaming
// drains stdout and stderr concurrently and hands every line to a sink as
// it arrives; it is meant for installers whose output can exceed the OS
// pipe buffer.
//
// A program that cannot be started is reported as a *LaunchError. A
// program that ran and exited non-zero is not an error: its Outcome has
// Success set to false.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/vertti/medic-rust/internal/ulog"
)

// Outcome is the result of a process that was started and ran to completion.
type Outcome struct {
	Success  bool
	ExitCode int
	Stdout   string
	Stderr   string
}

// LaunchError reports that a program could not be found or spawned.
type LaunchError struct {
	Name string
	Args []string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to launch %s: %v", strings.TrimSpace(e.Name+" "+strings.Join(e.Args, " ")), e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsLaunchError reports whether err (or anything it wraps) is a *LaunchError.
func IsLaunchError(err error) bool {
	var launchErr *LaunchError
	return errors.As(err, &launchErr)
}

// LineSink receives one line of subprocess output, without its line terminator.
type LineSink func(line string)

// Runner abstracts command execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) (Outcome, error)
	RunStreaming(sink LineSink, name string, args ...string) (Outcome, error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct {
	Logger *slog.Logger
}

func (r *RealRunner) logger() *slog.Logger {
	if r.Logger == nil {
		return ulog.Discard()
	}
	return r.Logger
}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its buffered output.
func (r *RealRunner) Run(name string, args ...string) (Outcome, error) {
	log := r.logger().With(ulog.Command(name, args))
	log.Debug("running command")

	cmd := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	outcome, err := classify(name, args, cmd.Run())
	if err != nil {
		log.Debug("command failed to launch", ulog.Error(err))
		return Outcome{}, err
	}
	outcome.Stdout = outBuf.String()
	outcome.Stderr = errBuf.String()

	log.Debug("command finished", slog.Int("exit_code", outcome.ExitCode))
	return outcome, nil
}

// classify turns the error from Run or Wait into an Outcome or a LaunchError.
func classify(name string, args []string, err error) (Outcome, error) {
	if err == nil {
		return Outcome{Success: true}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Outcome{Success: false, ExitCode: exitErr.ExitCode()}, nil
	}
	return Outcome{}, &LaunchError{Name: name, Args: args, Err: err}
}
