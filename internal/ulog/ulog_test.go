package ulog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var quiet, verbose bytes.Buffer

	New(&quiet, false).Debug("hidden")
	New(&verbose, true).Debug("shown")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "shown")
}

func TestError(t *testing.T) {
	assert.Equal(t, "<nil>", Error(nil).Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "cargo fmt --check", Command("cargo", []string{"fmt", "--check"}).Value.String())
	assert.Equal(t, "rustup", Command("rustup", nil).Value.String())
}
