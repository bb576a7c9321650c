package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/internal/ulog"
	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/config"
	"github.com/vertti/medic-rust/pkg/install"
	"github.com/vertti/medic-rust/pkg/output"
	"github.com/vertti/medic-rust/pkg/protocol"
	"github.com/vertti/medic-rust/pkg/runner"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// newRunner is replaced in tests.
var newRunner = func(logger *slog.Logger) runner.Runner {
	return &runner.RealRunner{Logger: logger}
}

// env holds what every subcommand needs to build its checks.
type env struct {
	runner runner.Runner
	status *protocol.Writer
	gate   *install.Gate
}

func newEnv(cmd *cobra.Command) *env {
	logger := ulog.New(cmd.ErrOrStderr(), verbose)
	r := newRunner(logger)
	status := protocol.NewWriter(cmd.ErrOrStderr())
	return &env{
		runner: r,
		status: status,
		gate:   &install.Gate{Runner: r, Status: status},
	}
}

// loadConfig reads the project file. A missing file yields an empty Config
// unless --config names it explicitly.
func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.Discover(wd, configFile)
}

// runCheck executes a check, prints the result, and returns an error if failed.
// The returned error causes main to exit with code 1.
func runCheck(cmd *cobra.Command, c check.Checker) error {
	result := c.Run()
	output.PrintResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
