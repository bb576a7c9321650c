// Package auditcheck runs cargo audit against the current project.
package auditcheck

import (
	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/install"
	"github.com/vertti/medic-rust/pkg/runner"
	"github.com/vertti/medic-rust/pkg/toolchaincheck"
)

// Check verifies that no dependency has a known vulnerability.
// cargo-audit is installed first when it is missing.
type Check struct {
	Runner runner.Runner
	Gate   *install.Gate
}

// Run executes the audit check. The steps stop at the first failure.
func (c *Check) Run() check.Result {
	return check.Sequence(
		func() check.Result { return toolchaincheck.Require(c.Runner, "cargo") },
		func() check.Result { return c.Gate.EnsureCargoTool("cargo-audit") },
		c.audit,
	)
}

func (c *Check) audit() check.Result {
	result := check.Result{
		Name: "cargo: audit",
	}

	outcome, err := c.Runner.Run("cargo", "audit", "--color=always")
	if err != nil {
		return result.Fail("Unable to run `cargo audit`. Is cargo-audit in PATH?", err)
	}
	if !outcome.Success {
		result.WithOutput(outcome.Stdout, outcome.Stderr)
		return result.Failf("Vulnerable crates detected")
	}

	return result.Pass()
}
