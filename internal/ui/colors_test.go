package ui

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestInitColors(t *testing.T) {
	t.Run("with NO_COLOR", func(t *testing.T) {
		os.Setenv("NO_COLOR", "1")
		defer os.Unsetenv("NO_COLOR")

		color.NoColor = false
		InitColors()

		assert.True(t, color.NoColor)
	})

	t.Run("with TERM=dumb", func(t *testing.T) {
		os.Setenv("TERM", "dumb")
		defer os.Unsetenv("TERM")

		color.NoColor = false
		InitColors()

		assert.True(t, color.NoColor)
	})
}

func TestPrintFunctions(t *testing.T) {
	// Disable colors for consistent testing
	DisableColors()
	defer EnableColors()

	t.Run("PrintSuccess", func(t *testing.T) {
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		PrintSuccess("test %s", "message")

		w.Close()
		os.Stdout = oldStdout

		var buf bytes.Buffer
		buf.ReadFrom(r)
		output := buf.String()

		assert.Contains(t, output, "test message")
	})

	t.Run("PrintKeyValue", func(t *testing.T) {
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		PrintKeyValue("pkg-config executable", "pkg-config")

		w.Close()
		os.Stdout = oldStdout

		var buf bytes.Buffer
		buf.ReadFrom(r)
		output := buf.String()

		assert.Contains(t, output, "pkg-config executable")
	})
}

func TestColorizeSource(t *testing.T) {
	DisableColors()
	defer EnableColors()

	tests := []struct {
		source string
		want   string
	}{
		{"python-config", "python-config"},
		{"pkg-config", "pkg-config"},
		{"interpreter", "interpreter"},
		{"windows-layout", "windows-layout"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorizeSource(tt.source))
		})
	}
}
