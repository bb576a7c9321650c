package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/pkg/check"
	"github.com/vertti/medic-rust/pkg/config"
)

// builder turns flags and the project file into a runnable check.
type builder func(e *env, cfg *config.Config) (check.Checker, error)

var builders = map[string]builder{}

func registerCheck(name string, b builder) {
	builders[name] = b
}

func checkNames() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the checks listed in " + config.FileName,
	Long: "Run executes the checks named under `checks:` in " + config.FileName +
		" in order and stops at the first failure.",
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runNamed executes a single registered check.
func runNamed(cmd *cobra.Command, name string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := builders[name](newEnv(cmd), cfg)
	if err != nil {
		return err
	}
	return runCheck(cmd, c)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Checks) == 0 {
		return errors.New("no checks listed in " + config.FileName)
	}

	// Build everything first so a typo fails before any tool runs.
	e := newEnv(cmd)
	checks := make([]check.Checker, 0, len(cfg.Checks))
	for _, name := range cfg.Checks {
		b, ok := builders[name]
		if !ok {
			return fmt.Errorf("unknown check %q (valid: %s)", name, strings.Join(checkNames(), ", "))
		}
		c, err := b(e, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		checks = append(checks, c)
	}

	for _, c := range checks {
		if err := runCheck(cmd, c); err != nil {
			return err
		}
	}
	return nil
}
