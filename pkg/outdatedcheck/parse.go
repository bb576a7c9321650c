package outdatedcheck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Dependency is one entry reported by `cargo outdated --format=json`.
type Dependency struct {
	Crate   string // crate_name of the JSON line the entry came from
	Name    string // leaf dependency name
	Parent  string // dependency that pulls Name in; empty for direct dependencies
	Project string // version currently resolved in Cargo.lock
	Compat  string // latest semver-compatible version, if reported
	Latest  string // latest published version
}

// nameRegex splits "parent->child" on the last arrow. The parent group is
// optional; the leaf must be non-empty.
var nameRegex = regexp.MustCompile(`^(?:(.*)->)?(.+)$`)

// ErrEmptyName is returned by ParseName for an empty dependency name.
var ErrEmptyName = errors.New("empty dependency name")

// ParseName splits a cargo-outdated dependency name such as
// "serde_derive->syn" into its parent ("serde_derive") and leaf ("syn").
// Names without an arrow have no parent.
func ParseName(raw string) (parent, name string, err error) {
	m := nameRegex.FindStringSubmatch(raw)
	if m == nil {
		if raw == "" {
			return "", "", ErrEmptyName
		}
		return "", "", fmt.Errorf("dependency name %q does not match %s", raw, nameRegex)
	}
	return m[1], m[2], nil
}

// Parse decodes cargo-outdated output, one JSON object per line. Blank
// lines are skipped. Any malformed line or dependency entry fails the
// whole parse; no partial result is returned.
func Parse(output string) ([]Dependency, error) {
	var deps []Dependency
	for i, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineDeps, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		deps = append(deps, lineDeps...)
	}
	return deps, nil
}

func parseLine(line string) ([]Dependency, error) {
	if !gjson.Valid(line) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.Parse(line)
	if !doc.IsObject() {
		return nil, errors.New("expected a JSON object")
	}

	entries := doc.Get("dependencies")
	if !entries.IsArray() {
		return nil, errors.New(`missing "dependencies" array`)
	}

	crate := doc.Get("crate_name").String()
	var deps []Dependency
	for i, entry := range entries.Array() {
		d, err := parseDependency(entry)
		if err != nil {
			return nil, fmt.Errorf("dependency %d: %w", i, err)
		}
		d.Crate = crate
		deps = append(deps, d)
	}
	return deps, nil
}

func parseDependency(entry gjson.Result) (Dependency, error) {
	fields := map[string]string{}
	for _, key := range []string{"name", "project", "latest"} {
		v := entry.Get(key)
		if v.Type != gjson.String {
			return Dependency{}, fmt.Errorf("missing string field %q", key)
		}
		fields[key] = v.String()
	}

	parent, name, err := ParseName(fields["name"])
	if err != nil {
		return Dependency{}, err
	}

	return Dependency{
		Name:    name,
		Parent:  parent,
		Project: fields["project"],
		Compat:  entry.Get("compat").String(),
		Latest:  fields["latest"],
	}, nil
}
