package cmd

import (
	"io"
	"testing"

	"github.com/quantmind-br/pyconf/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewDoctorCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{
		Tools: config.ToolsConfig{PkgConfig: "pkg-config"},
	}

	cmd := NewDoctorCmd(cfg, &logger)

	assert.NotNil(t, cmd)
	assert.Equal(t, "doctor", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("probe"))
}
