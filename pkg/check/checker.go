package check

// Checker is implemented by all check types.
// Each check validates a specific aspect of the Rust environment
// and returns a Result indicating success or failure.
//
// Implementations:
//   - auditcheck.Check: runs cargo audit
//   - cratecheck.Check: verifies crates installed with cargo install
//   - fmtcheck.Check: runs cargo fmt --check
//   - outdatedcheck.Check: reports outdated dependencies
//   - targetcheck.Check: verifies rustup targets
//   - toolchaincheck.Check: verifies cargo, rustup and rustc
type Checker interface {
	Run() Result
}

// Step is one stage of a composed check.
type Step func() Result

// Sequence runs steps in order and returns the first result that is not OK,
// unchanged. If every step passes, the last step's result is returned.
// Steps after a failure are never run.
func Sequence(steps ...Step) Result {
	result := Result{Status: StatusOK}
	for _, step := range steps {
		result = step()
		if !result.OK() {
			return result
		}
	}
	return result
}
