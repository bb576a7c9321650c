package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/internal/ulog"
	"github.com/vertti/medic-rust/pkg/install"
	"github.com/vertti/medic-rust/pkg/outdatedcheck"
	"github.com/vertti/medic-rust/pkg/output"
	"github.com/vertti/medic-rust/pkg/protocol"
	"github.com/vertti/medic-rust/pkg/runner"
)

// Version is set at build time via ldflags
var Version = "dev"

// ErrCheckFailed is returned when the outdated check could not complete.
var ErrCheckFailed = errors.New("check failed")

var verbose bool

// newRunner is replaced in tests.
var newRunner = func(logger *slog.Logger) runner.Runner {
	return &runner.RealRunner{Logger: logger}
}

var rootCmd = &cobra.Command{
	Use:           "medic-outdated-rust",
	Short:         "Check for outdated crates",
	Long:          "medic-outdated-rust installs cargo-outdated if needed and prints one ::outdated:: line per outdated dependency.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runOutdated,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log subprocess invocations to stderr")
}

func runOutdated(cmd *cobra.Command, args []string) error {
	r := newRunner(ulog.New(cmd.ErrOrStderr(), verbose))
	status := protocol.NewWriter(cmd.ErrOrStderr())

	c := &outdatedcheck.Check{
		Runner: r,
		Gate:   &install.Gate{Runner: r, Status: status},
		Status: status,
		Report: protocol.NewWriter(cmd.OutOrStdout()),
	}

	result := c.Run()
	if result.OK() {
		return nil
	}
	// Report lines own stdout, so the human summary goes to stderr only.
	output.PrintResult(cmd.ErrOrStderr(), cmd.ErrOrStderr(), result)
	return ErrCheckFailed
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
