package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
//
// A failed Result always carries a Message. Stdout and Stderr are nil when
// no process output was captured (for example when the tool could not be
// launched at all), which is different from captured-but-empty output.
// Remedy is a literal shell command the caller may suggest or run; it is
// empty when no deterministic fix exists.
type Result struct {
	Name    string   // e.g., "cargo: fmt", "crates"
	Status  Status   // OK or FAIL
	Message string   // why the check failed
	Stdout  *string  // captured stdout of the wrapped tool
	Stderr  *string  // captured stderr of the wrapped tool
	Remedy  string   // e.g., "cargo install --locked cargo-audit"
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// HasOutput reports whether process output was captured for this result.
func (r Result) HasOutput() bool {
	return r.Stdout != nil || r.Stderr != nil
}
