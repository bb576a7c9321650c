package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/medic-rust/pkg/runner"
	"github.com/vertti/medic-rust/pkg/testutil"
)

func executeCommand(t *testing.T, m *testutil.MockRunner, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	orig := newRunner
	newRunner = func(*slog.Logger) runner.Runner { return m }
	t.Cleanup(func() { newRunner = orig })

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)
	verbose = false
	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func outdatedJSON(lines ...string) func(string, ...string) (runner.Outcome, error) {
	return func(string, ...string) (runner.Outcome, error) {
		out := ""
		for _, l := range lines {
			out += l + "\n"
		}
		return testutil.Succeeded(out, ""), nil
	}
}

func TestOutdated_ReportsToStdout(t *testing.T) {
	m := &testutil.MockRunner{
		RunFunc: outdatedJSON(
			`{"crate_name":"app","dependencies":[{"name":"serde","project":"1.0.100","compat":"1.0.197","latest":"1.0.197","kind":"Normal"},{"name":"tokio->mio","project":"0.8.0","compat":"0.8.11","latest":"1.0.1","kind":"Normal"}]}`,
		),
	}

	stdout, stderr, err := executeCommand(t, m)
	require.NoError(t, err)
	assert.Equal(t,
		"::outdated::name=serde::version=1.0.100::latest=1.0.197\n"+
			"::outdated::name=mio::version=0.8.0::latest=1.0.1::parent=tokio\n"+
			"::remedy::cargo update --verbose\n",
		stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{"cargo outdated --format=json"}, m.CommandLines())
}

func TestOutdated_NothingOutdated(t *testing.T) {
	m := &testutil.MockRunner{RunFunc: outdatedJSON(`{"crate_name":"app","dependencies":[]}`)}

	stdout, _, err := executeCommand(t, m)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestOutdated_InstallsCargoOutdated(t *testing.T) {
	m := &testutil.MockRunner{
		LookPathFunc: testutil.Missing("cargo-outdated"),
		RunStreamingFunc: func(sink runner.LineSink, _ string, _ ...string) (runner.Outcome, error) {
			sink("Compiling cargo-outdated v0.15.0")
			return testutil.Succeeded("", ""), nil
		},
		RunFunc: outdatedJSON(`{"dependencies":[]}`),
	}

	stdout, stderr, err := executeCommand(t, m)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t,
		"::action::cargo-outdated-install::Installing cargo-outdated\n"+
			"::info::cargo-outdated-install::Compiling cargo-outdated v0.15.0\n"+
			"::success::cargo-outdated-install::\n",
		stderr)
}

func TestOutdated_Failures(t *testing.T) {
	tests := []struct {
		name       string
		runner     *testutil.MockRunner
		wantStatus string
	}{
		{
			name: "cargo outdated exits non-zero",
			runner: &testutil.MockRunner{
				RunFunc: func(string, ...string) (runner.Outcome, error) {
					return testutil.Exited(101, "", "error: could not find `Cargo.toml`\n"), nil
				},
			},
			wantStatus: "::failure::Unable to get outdated\n",
		},
		{
			name:       "malformed json",
			runner:     &testutil.MockRunner{RunFunc: outdatedJSON(`{"dependencies":[`)},
			wantStatus: "::failure::Unable to parse cargo outdated output",
		},
		{
			name: "install fails",
			runner: &testutil.MockRunner{
				LookPathFunc: testutil.Missing("cargo-outdated"),
				RunStreamingFunc: func(runner.LineSink, string, ...string) (runner.Outcome, error) {
					return testutil.Exited(101, "", "error: failed to compile\n"), nil
				},
			},
			wantStatus: "::failure::cargo-outdated-install::\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := executeCommand(t, tt.runner)
			require.ErrorIs(t, err, ErrCheckFailed)
			assert.Empty(t, stdout, "nothing partial is reported")
			assert.Contains(t, stderr, tt.wantStatus)
			assert.Contains(t, stderr, "[FAIL] ")
		})
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := executeCommand(t, &testutil.MockRunner{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "medic-outdated-rust")

	// cobra keeps the flag set between Execute calls
	require.NoError(t, rootCmd.Flags().Set("version", "false"))
}
