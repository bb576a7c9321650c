package main

import (
	"fmt"

	"github.com/vertti/medic-rust/pkg/config"
)

// valuesOrConfig returns the flag values if any were given, otherwise the
// values from the project file. Flags always win over the file.
func valuesOrConfig(flagName string, flagValues, configValues []string, configKey string) ([]string, error) {
	if len(flagValues) > 0 {
		return flagValues, nil
	}
	if len(configValues) > 0 {
		return configValues, nil
	}
	return nil, fmt.Errorf("at least one --%s is required (or %q in %s)", flagName, configKey, config.FileName)
}
