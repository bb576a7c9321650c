// Package presence finds which expected entities are absent from a tool's
// listing output, using line-anchored literal matching.
package presence

import (
	"regexp"
)

// Format describes how a present entity is written in a listing.
// An entity is present when some line starts with the name immediately
// followed by Delimiter.
type Format struct {
	Delimiter string
}

var (
	// CrateList matches `cargo install --list` output: "cargo-audit v0.18.1:".
	CrateList = Format{Delimiter: " v"}

	// TargetList matches `rustup target list` output: "aarch64-apple-darwin (installed)".
	TargetList = Format{Delimiter: " (installed)"}
)

// pattern builds the anchor for one name. The name is quoted so characters
// like '.' or '+' in crate names are matched literally.
func (f Format) pattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(name) + regexp.QuoteMeta(f.Delimiter))
}

// FindMissing returns the names that have no anchored line in haystack,
// in input order. Duplicates in names are kept.
func FindMissing(haystack string, names []string, format Format) []string {
	var missing []string
	for _, name := range names {
		if !format.pattern(name).MatchString(haystack) {
			missing = append(missing, name)
		}
	}
	return missing
}

// MissingCrates returns crates from names not listed in `cargo install --list` output.
func MissingCrates(stdout string, names []string) []string {
	return FindMissing(stdout, names, CrateList)
}

// MissingTargets returns targets from names not marked installed in `rustup target list` output.
func MissingTargets(stdout string, targets []string) []string {
	return FindMissing(stdout, targets, TargetList)
}
