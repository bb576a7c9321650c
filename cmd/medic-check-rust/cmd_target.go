package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/config"
	"github.com/vertti/medic-rust/pkg/targetcheck"
)

var targetNames []string

var targetCmd = &cobra.Command{
	Use:   "target-installed",
	Short: "Check that release targets are installed with rustup",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNamed(cmd, "target-installed")
	},
}

func init() {
	targetCmd.Flags().StringArrayVarP(&targetNames, "target", "t", nil, "release target triple (repeatable)")
	registerCheck("target-installed", buildTargetCheck)
	rootCmd.AddCommand(targetCmd)
}

func buildTargetCheck(e *env, cfg *config.Config) (check.Checker, error) {
	targets, err := valuesOrConfig("target", targetNames, cfg.Targets, "targets")
	if err != nil {
		return nil, err
	}
	return &targetcheck.Check{
		Targets: targets,
		Runner:  e.runner,
	}, nil
}
