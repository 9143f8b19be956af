package discover

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/pyconf/internal/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsStrategy(t *testing.T) {
	ctx := context.Background()

	installDir := filepath.Join("C:", "Python311")
	exePath := filepath.Join(installDir, "python311.exe")

	newFs := func(subdirs ...string) afero.Fs {
		fs := afero.NewMemMapFs()
		for _, sub := range subdirs {
			require.NoError(t, fs.MkdirAll(filepath.Join(installDir, sub), 0755))
		}
		return fs
	}

	lookPath := func(name string) (string, error) {
		if name == "python311" {
			return exePath, nil
		}
		return "", exec.ErrNotFound
	}

	t.Run("no interpreter on PATH", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{}
		s := newWindowsStrategy(runner, newFs("Include", "libs"), nopLogger())

		out := s.Probe(ctx, "311")

		assert.True(t, out.Empty())
	})

	t.Run("finds both conventional subdirectories", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{LookPathFunc: lookPath}
		s := newWindowsStrategy(runner, newFs("Include", "libs"), nopLogger())

		out := s.Probe(ctx, "311")

		assert.Equal(t, []string{filepath.Join(installDir, "Include")}, out.IncludeDirs)
		assert.Equal(t, []string{filepath.Join(installDir, "libs")}, out.LibraryDirs)
		assert.Empty(t, out.Libraries)
	})

	t.Run("missing subdirectories are skipped", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{LookPathFunc: lookPath}
		s := newWindowsStrategy(runner, newFs("Include"), nopLogger())

		out := s.Probe(ctx, "311")

		assert.Equal(t, []string{filepath.Join(installDir, "Include")}, out.IncludeDirs)
		assert.Empty(t, out.LibraryDirs)
	})

	t.Run("falls back to generic interpreter names", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{
			LookPathFunc: func(name string) (string, error) {
				if name == "python" {
					return exePath, nil
				}
				return "", exec.ErrNotFound
			},
		}
		s := newWindowsStrategy(runner, newFs("libs"), nopLogger())

		out := s.Probe(ctx, "311")

		assert.Equal(t, []string{filepath.Join(installDir, "libs")}, out.LibraryDirs)
	})
}
