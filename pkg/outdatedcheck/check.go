// Package outdatedcheck reports dependencies that have newer releases,
// using cargo-outdated.
package outdatedcheck

import (
	"fmt"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/install"
	"github.com/vertti/medic-rust/pkg/protocol"
	"github.com/vertti/medic-rust/pkg/runner"
	"github.com/vertti/medic-rust/pkg/toolchaincheck"
)

// Remedy is suggested once when any dependency is outdated.
const Remedy = "cargo update --verbose"

// Check runs cargo outdated and prints one ::outdated:: line per dependency.
// Having outdated dependencies is not a failure; failing to find out is.
type Check struct {
	Runner runner.Runner
	Gate   *install.Gate
	Status *protocol.Writer // ::failure:: lines
	Report *protocol.Writer // ::outdated:: and ::remedy:: lines
}

// Run executes the outdated check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "cargo: outdated",
	}

	if r := toolchaincheck.Require(c.Runner, "cargo"); !r.OK() {
		c.Status.FailureMessage(r.Message)
		return r
	}
	if r := c.Gate.EnsureCargoTool("cargo-outdated"); !r.OK() {
		return r
	}

	outcome, err := c.Runner.Run("cargo", "outdated", "--format=json")
	if err != nil {
		c.Status.FailureMessage("Unable to run cargo outdated")
		return result.Fail("Unable to run `cargo outdated`. Is cargo-outdated in PATH?", err)
	}
	if !outcome.Success {
		c.Status.FailureMessage("Unable to get outdated")
		result.WithOutput(outcome.Stdout, outcome.Stderr)
		return result.Failf("Unable to get outdated: `cargo outdated` exited with status %d", outcome.ExitCode)
	}

	deps, err := Parse(outcome.Stdout)
	if err != nil {
		msg := fmt.Sprintf("Unable to parse cargo outdated output: %v", err)
		c.Status.FailureMessage(msg)
		result.WithOutput(outcome.Stdout, outcome.Stderr)
		return result.Fail(msg, err)
	}

	for _, d := range deps {
		c.Report.Outdated(protocol.Outdated{
			Name:      d.Name,
			Installed: d.Project,
			Latest:    d.Latest,
			Parent:    d.Parent,
		})
	}
	if len(deps) > 0 {
		c.Report.Remedy(Remedy)
	}

	result.AddDetailf("outdated: %d", len(deps))
	return result.Pass()
}
