// Package fmtcheck verifies that a Rust project is formatted with rustfmt.
package fmtcheck

import (
	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/runner"
	"github.com/vertti/medic-rust/pkg/toolchaincheck"
)

// Remedy is the command suggested when formatting is off.
const Remedy = "cargo fmt"

// Check runs cargo fmt --check.
type Check struct {
	Runner runner.Runner
}

// Run executes the formatting check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "cargo: fmt",
	}

	if r := toolchaincheck.Require(c.Runner, "cargo"); !r.OK() {
		return r
	}

	outcome, err := c.Runner.Run("cargo", "fmt", "--check")
	if err != nil {
		return result.Fail("Unable to check for rust formatting. Is `cargo` in PATH?", err)
	}
	if !outcome.Success {
		result.WithOutput(outcome.Stdout, outcome.Stderr).WithRemedy(Remedy)
		return result.Failf("Rust project is not correctly formatted")
	}

	return result.Pass()
}
