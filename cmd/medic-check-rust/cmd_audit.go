package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/pkg/auditcheck"
	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/config"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run cargo audit, installing cargo-audit if needed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNamed(cmd, "audit")
	},
}

func init() {
	registerCheck("audit", buildAuditCheck)
	rootCmd.AddCommand(auditCmd)
}

func buildAuditCheck(e *env, _ *config.Config) (check.Checker, error) {
	return &auditcheck.Check{
		Runner: e.runner,
		Gate:   e.gate,
	}, nil
}
