package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/config"
	"github.com/vertti/medic-rust/pkg/toolchaincheck"
)

var (
	rustcConstraint string
	toolchainTools  []string
)

var toolchainCmd = &cobra.Command{
	Use:   "toolchain",
	Short: "Check that cargo, rustup and rustc are on PATH",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNamed(cmd, "toolchain")
	},
}

func init() {
	toolchainCmd.Flags().StringVar(&rustcConstraint, "rustc", "", "semver constraint rustc must satisfy, e.g. \">= 1.70\"")
	toolchainCmd.Flags().StringSliceVar(&toolchainTools, "tool", nil, "binary that must be on PATH (default: cargo, rustup, rustc)")
	registerCheck("toolchain", buildToolchainCheck)
	rootCmd.AddCommand(toolchainCmd)
}

func buildToolchainCheck(e *env, cfg *config.Config) (check.Checker, error) {
	constraint := rustcConstraint
	if constraint == "" {
		constraint = cfg.Rustc
	}
	return &toolchaincheck.Check{
		Tools:           toolchainTools,
		RustcConstraint: constraint,
		Runner:          e.runner,
	}, nil
}
