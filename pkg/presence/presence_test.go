package presence

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMissingCrates(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		names  []string
		want   []string
	}{
		{
			name:   "all installed",
			stdout: "cargo-audit v0.18.1:\n    cargo-audit\ncargo-outdated v0.13.1:\n    cargo-outdated\n",
			names:  []string{"cargo-audit", "cargo-outdated"},
			want:   nil,
		},
		{
			name:   "one missing",
			stdout: "cargo-audit v0.18.1:\n    cargo-audit\n",
			names:  []string{"cargo-audit", "cargo-outdated"},
			want:   []string{"cargo-outdated"},
		},
		{
			name:   "crate with hyphen",
			stdout: "my-crate v1.0.0:\n    my-crate\n",
			names:  []string{"my-crate"},
			want:   nil,
		},
		{
			name:   "not fooled by prefix match",
			stdout: "cargo-audit-extended v1.0.0:\n    cargo-audit-extended\n",
			names:  []string{"cargo-audit"},
			want:   []string{"cargo-audit"},
		},
		{
			name:   "binary line does not count",
			stdout: "cargo-nextest v0.9.0:\n    cargo-audit\n",
			names:  []string{"cargo-audit"},
			want:   []string{"cargo-audit"},
		},
		{
			name:   "name is matched literally",
			stdout: "cargoXaudit v1.0.0:\n",
			names:  []string{"cargo.audit"},
			want:   []string{"cargo.audit"},
		},
		{
			name:   "duplicates preserved",
			stdout: "",
			names:  []string{"b", "a", "b"},
			want:   []string{"b", "a", "b"},
		},
		{
			name:   "windows line endings",
			stdout: "cargo-audit v0.18.1:\r\n    cargo-audit\r\n",
			names:  []string{"cargo-audit"},
			want:   nil,
		},
		{
			name:   "no names",
			stdout: "cargo-audit v0.18.1:\n",
			names:  nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingCrates(tt.stdout, tt.names)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MissingCrates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMissingTargets(t *testing.T) {
	tests := []struct {
		name    string
		stdout  string
		targets []string
		want    []string
	}{
		{
			name:    "all installed",
			stdout:  "aarch64-apple-darwin (installed)\nx86_64-apple-darwin (installed)\n",
			targets: []string{"aarch64-apple-darwin"},
			want:    nil,
		},
		{
			name:    "one missing",
			stdout:  "aarch64-apple-darwin (installed)\nx86_64-apple-darwin\n",
			targets: []string{"aarch64-apple-darwin", "x86_64-apple-darwin"},
			want:    []string{"x86_64-apple-darwin"},
		},
		{
			name:    "not fooled by prefix match",
			stdout:  "wasm32-unknown-unknown-extra (installed)\n",
			targets: []string{"wasm32-unknown-unknown"},
			want:    []string{"wasm32-unknown-unknown"},
		},
		{
			name:    "crate format does not satisfy target format",
			stdout:  "x86_64-unknown-linux-gnu v1.0.0\n",
			targets: []string{"x86_64-unknown-linux-gnu"},
			want:    []string{"x86_64-unknown-linux-gnu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingTargets(tt.stdout, tt.targets)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MissingTargets() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindMissing_PresentAndAbsentPartition(t *testing.T) {
	present := []string{"serde", "tokio", "clap"}
	absent := []string{"anyhow", "tokio-util", "serde_json"}

	var lines []string
	for _, name := range present {
		lines = append(lines, name+" v1.0.0:", "    "+name)
	}
	haystack := strings.Join(lines, "\n") + "\n"

	names := []string{"anyhow", "serde", "tokio-util", "tokio", "serde_json", "clap"}
	got := FindMissing(haystack, names, CrateList)

	assert.Equal(t, absent, got)
}

func TestFindMissing_Idempotent(t *testing.T) {
	haystack := "aarch64-apple-darwin (installed)\nx86_64-apple-darwin\n"
	targets := []string{"aarch64-apple-darwin", "x86_64-apple-darwin", "riscv64gc-unknown-linux-gnu"}

	first := FindMissing(haystack, targets, TargetList)
	second := FindMissing(haystack, targets, TargetList)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"x86_64-apple-darwin", "riscv64gc-unknown-linux-gnu"}, first)
}
