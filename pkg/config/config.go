// Package config loads the optional .medic-rust.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project file searched for by FindFile.
const FileName = ".medic-rust.yaml"

// ErrNotFound is returned by FindFile when no project file exists.
var ErrNotFound = errors.New(FileName + " file not found")

// Config lists what a project expects from its Rust environment.
type Config struct {
	Crates  []string `yaml:"crates"`  // binary crates for crate-installed
	Targets []string `yaml:"targets"` // rustup targets for target-installed
	Rustc   string   `yaml:"rustc"`   // semver constraint for rustc, e.g. ">= 1.70"
	Checks  []string `yaml:"checks"`  // subcommands executed by `run`, in order
}

// FindFile returns explicitPath if set, otherwise the nearest project file
// at or above startDir. The search stops at the home directory or at a
// directory containing .git.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		path := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

// Load reads and validates the project file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading project config
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.Crates = clean(cfg.Crates)
	cfg.Targets = clean(cfg.Targets)
	cfg.Checks = clean(cfg.Checks)
	cfg.Rustc = strings.TrimSpace(cfg.Rustc)
	return &cfg, nil
}

// Discover finds and loads the project file. A missing file is not an
// error when explicitPath is empty: an empty Config is returned instead.
func Discover(startDir, explicitPath string) (*Config, error) {
	path, err := FindFile(startDir, explicitPath)
	if errors.Is(err, ErrNotFound) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func clean(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
