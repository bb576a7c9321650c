package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/config"
	"github.com/vertti/medic-rust/pkg/fmtcheck"
)

var formatCmd = &cobra.Command{
	Use:   "format-check",
	Short: "Check that the project is formatted with cargo fmt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNamed(cmd, "format-check")
	},
}

func init() {
	registerCheck("format-check", buildFormatCheck)
	rootCmd.AddCommand(formatCmd)
}

func buildFormatCheck(e *env, _ *config.Config) (check.Checker, error) {
	return &fmtcheck.Check{Runner: e.runner}, nil
}
