// Package install makes sure optional cargo helpers are present before a
// check uses them, installing them on the fly when they are not.
package install

import (
	"fmt"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/protocol"
	"github.com/vertti/medic-rust/pkg/runner"
)

// Gate installs missing helper tools. Progress is reported on Status.
type Gate struct {
	Runner runner.Runner
	Status *protocol.Writer
}

// CargoInstall returns the program and arguments that install tool with cargo.
func CargoInstall(tool string) (string, []string) {
	return "cargo", []string{"install", tool, "--color=always"}
}

// Tag is the protocol tag used while tool is being installed.
func Tag(tool string) string {
	return tool + "-install"
}

// EnsureInstalled returns OK right away when tool is on PATH. Otherwise it
// runs program with args, forwarding every output line as an ::info::
// status line, and fails if the installer cannot be launched or exits
// non-zero. A failed install never carries a remedy: the install was the fix.
func (g *Gate) EnsureInstalled(tool, program string, args ...string) check.Result {
	result := check.Result{
		Name: fmt.Sprintf("install: %s", tool),
	}

	if path, err := g.Runner.LookPath(tool); err == nil {
		result.AddDetailf("path: %s", path)
		return result.Pass()
	}

	tag := Tag(tool)
	g.Status.Action(tag, "Installing "+tool)

	outcome, err := g.Runner.RunStreaming(func(line string) {
		g.Status.Info(tag, line)
	}, program, args...)
	if err != nil {
		g.Status.Failure(tag)
		return result.Fail(fmt.Sprintf("Unable to install %s: %v", tool, err), err)
	}
	if !outcome.Success {
		g.Status.Failure(tag)
		result.WithOutput(outcome.Stdout, outcome.Stderr)
		return result.Failf("Error installing %s (exit status %d)", tool, outcome.ExitCode)
	}

	g.Status.Success(tag)
	return result.Pass()
}

// EnsureCargoTool installs tool with `cargo install` when it is missing.
func (g *Gate) EnsureCargoTool(tool string) check.Result {
	program, args := CargoInstall(tool)
	return g.EnsureInstalled(tool, program, args...)
}
