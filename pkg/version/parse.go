// Package version extracts and checks tool versions from `--version` output.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 1.76.0, v1.2, 1.77.0-nightly, etc.
var versionRegex = regexp.MustCompile(`v?\d+(?:\.\d+){0,2}(?:-[0-9A-Za-z.-]+)?`)

// Extract finds and parses the first version number in a string, such as
// the output of `rustc --version`.
func Extract(s string) (*semver.Version, error) {
	match := versionRegex.FindString(s)
	if match == "" {
		return nil, fmt.Errorf("no version found in: %q", strings.TrimSpace(s))
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", match, err)
	}
	return v, nil
}

// ParseConstraint parses a constraint such as ">= 1.70" or "~1.75".
// An empty string yields nil.
func ParseConstraint(s string) (*semver.Constraints, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", s, err)
	}
	return c, nil
}

// Satisfies reports whether v meets c, comparing release versions only so
// that nightly and beta toolchains are judged by their version number.
func Satisfies(v *semver.Version, c *semver.Constraints) (bool, error) {
	release, err := v.SetPrerelease("")
	if err != nil {
		return false, err
	}
	ok, errs := c.Validate(&release)
	if ok {
		return true, nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return false, fmt.Errorf("%s", strings.Join(msgs, "; "))
}
