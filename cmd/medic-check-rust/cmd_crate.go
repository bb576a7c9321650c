package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/config"
	"github.com/vertti/medic-rust/pkg/cratecheck"
)

var crateNames []string

var crateCmd = &cobra.Command{
	Use:   "crate-installed",
	Short: "Check that crates are installed with cargo install",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNamed(cmd, "crate-installed")
	},
}

func init() {
	crateCmd.Flags().StringArrayVarP(&crateNames, "name", "n", nil, "name of a crate (repeatable)")
	registerCheck("crate-installed", buildCrateCheck)
	rootCmd.AddCommand(crateCmd)
}

func buildCrateCheck(e *env, cfg *config.Config) (check.Checker, error) {
	names, err := valuesOrConfig("name", crateNames, cfg.Crates, "crates")
	if err != nil {
		return nil, err
	}
	return &cratecheck.Check{
		Names:  names,
		Runner: e.runner,
	}, nil
}
