// Package cratecheck verifies that binary crates are installed with cargo install.
package cratecheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/presence"
	"github.com/vertti/medic-rust/pkg/runner"
	"github.com/vertti/medic-rust/pkg/toolchaincheck"
)

// Check verifies that every crate in Names shows up in `cargo install --list`.
type Check struct {
	Names  []string
	Runner runner.Runner
}

// Remedy returns the command that installs the given crates.
func Remedy(crates []string) string {
	return "cargo install --locked " + strings.Join(crates, " ")
}

// Run executes the crate check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "crates",
	}

	if len(c.Names) == 0 {
		return result.Fail("no crate names given", errors.New("at least one crate name is required"))
	}

	if r := toolchaincheck.Require(c.Runner, "cargo"); !r.OK() {
		return r
	}

	outcome, err := c.Runner.Run("cargo", "install", "--list")
	if err != nil {
		return result.Fail("Unable to check for installed crates. Is cargo in PATH?", err)
	}
	if !outcome.Success {
		result.WithOutput(outcome.Stdout, outcome.Stderr)
		return result.Failf("Unable to list installed crates: `cargo install --list` exited with status %d", outcome.ExitCode)
	}

	missing := presence.MissingCrates(outcome.Stdout, c.Names)
	if len(missing) > 0 {
		result.WithOutput(outcome.Stdout, outcome.Stderr).WithRemedy(Remedy(missing))
		return result.Fail(fmt.Sprintf("Rust crates %s do not appear to be installed", quoteList(missing)), nil)
	}

	result.AddDetailf("installed: %s", strings.Join(c.Names, ", "))
	return result.Pass()
}

// quoteList renders names as "`a`, `b`".
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}
