package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesOrConfig(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		config  []string
		want    []string
		wantErr string
	}{
		{
			name:   "flags win",
			flags:  []string{"a"},
			config: []string{"b", "c"},
			want:   []string{"a"},
		},
		{
			name:   "falls back to config",
			config: []string{"b", "c"},
			want:   []string{"b", "c"},
		},
		{
			name:    "neither set",
			wantErr: `at least one --name is required (or "crates" in .medic-rust.yaml)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := valuesOrConfig("name", tt.flags, tt.config, "crates")
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
