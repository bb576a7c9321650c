// Package targetcheck verifies that rustup compilation targets are installed.
package targetcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/presence"
	"github.com/vertti/medic-rust/pkg/runner"
	"github.com/vertti/medic-rust/pkg/toolchaincheck"
)

// Check verifies that every target triple in Targets is marked installed
// in `rustup target list`.
type Check struct {
	Targets []string
	Runner  runner.Runner
}

// Remedy returns the command that installs the given targets.
func Remedy(targets []string) string {
	return "rustup target install " + strings.Join(targets, " ")
}

// Run executes the target check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "targets",
	}

	if len(c.Targets) == 0 {
		return result.Fail("no targets given", errors.New("at least one target is required"))
	}

	if r := toolchaincheck.Require(c.Runner, "rustup"); !r.OK() {
		return r
	}

	outcome, err := c.Runner.Run("rustup", "target", "list")
	if err != nil {
		return result.Fail("Unable to check for installed targets. Is rustup in PATH?", err)
	}
	if !outcome.Success {
		result.WithOutput(outcome.Stdout, outcome.Stderr)
		return result.Failf("Unable to list targets: `rustup target list` exited with status %d", outcome.ExitCode)
	}

	missing := presence.MissingTargets(outcome.Stdout, c.Targets)
	if len(missing) > 0 {
		quoted := make([]string, len(missing))
		for i, t := range missing {
			quoted[i] = "`" + t + "`"
		}
		result.WithOutput(outcome.Stdout, outcome.Stderr).WithRemedy(Remedy(missing))
		return result.Fail(fmt.Sprintf("Rust targets %s do not appear to be installed", strings.Join(quoted, ", ")), nil)
	}

	result.AddDetailf("installed: %s", strings.Join(c.Targets, ", "))
	return result.Pass()
}
