// Package toolchaincheck verifies that the Rust toolchain binaries are
// installed and, optionally, that rustc is recent enough.
package toolchaincheck

import (
	"fmt"
	"strings"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/runner"
	"github.com/vertti/medic-rust/pkg/version"
)

// DefaultTools are checked when Check.Tools is empty.
var DefaultTools = []string{"cargo", "rustup", "rustc"}

// Require reports whether tool is on PATH. A missing toolchain binary is an
// environment defect, so the failure carries no remedy.
func Require(r runner.Runner, tool string) check.Result {
	result := check.Result{
		Name: tool,
	}

	path, err := r.LookPath(tool)
	if err != nil {
		return result.Fail(fmt.Sprintf("Unable to find %s in PATH.", tool), err)
	}

	result.AddDetailf("path: %s", path)
	return result.Pass()
}

// Check verifies toolchain binaries and the rustc version.
type Check struct {
	Tools           []string      // binaries that must be on PATH (default: DefaultTools)
	RustcConstraint string        // semver constraint for rustc, e.g. ">= 1.70"
	Runner          runner.Runner // injected for testing
}

// Run executes the toolchain check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "toolchain",
	}

	constraint, err := version.ParseConstraint(c.RustcConstraint)
	if err != nil {
		return result.Failf("%v", err)
	}

	tools := c.Tools
	if len(tools) == 0 {
		tools = DefaultTools
	}
	for _, tool := range tools {
		if r := Require(c.Runner, tool); !r.OK() {
			return r
		}
	}
	result.AddDetailf("found: %s", strings.Join(tools, ", "))

	if constraint == nil {
		return result.Pass()
	}

	if r := Require(c.Runner, "rustc"); !r.OK() {
		return r
	}

	outcome, err := c.Runner.Run("rustc", "--version")
	if err != nil {
		return result.Fail("Unable to run `rustc --version`. Is rustc in PATH?", err)
	}
	if !outcome.Success {
		result.WithOutput(outcome.Stdout, outcome.Stderr)
		return result.Failf("`rustc --version` exited with status %d", outcome.ExitCode)
	}

	v, err := version.Extract(outcome.Stdout)
	if err != nil {
		result.WithOutput(outcome.Stdout, outcome.Stderr)
		return result.Failf("could not parse rustc version: %v", err)
	}
	result.AddDetailf("rustc: %s", v)

	if ok, err := version.Satisfies(v, constraint); !ok {
		result.WithOutput(outcome.Stdout, outcome.Stderr).WithRemedy("rustup update")
		return result.Fail(fmt.Sprintf("rustc %s does not satisfy %q", v, c.RustcConstraint), err)
	}

	return result.Pass()
}
