package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/medic-rust/pkg/config"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	verbose    bool
	configFile string
)

var rootCmd = &cobra.Command{
	Use:           "medic-check-rust",
	Short:         "Checks for ensuring that Rust dependencies are properly installed",
	Long:          "medic-check-rust verifies the Rust toolchain, installed crates and targets, formatting and security advisories for medic.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log subprocess invocations to stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to "+config.FileName+" (default: search up from current directory)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
