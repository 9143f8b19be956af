package cmd

import (
	"io"
	"testing"

	"github.com/quantmind-br/pyconf/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	cmd := NewRootCmd(cfg, &logger, "1.0.0")

	assert.NotNil(t, cmd)
	assert.Equal(t, "pyconf", cmd.Use)
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	cmd := NewRootCmd(cfg, &logger, "1.0.0")

	expected := []string{"resolve", "cflags", "ldflags", "interpreters", "doctor", "version"}
	for _, name := range expected {
		sub, _, err := cmd.Find([]string{name})
		assert.NoError(t, err, "subcommand %s should exist", name)
		assert.NotNil(t, sub)
	}
}
