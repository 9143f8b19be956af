package discover

import (
	"context"
	"errors"
	"testing"

	"github.com/quantmind-br/pyconf/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestPkgConfigStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to pkg-config executable", func(t *testing.T) {
		s := newPkgConfigStrategy(&helpers.MockCommandRunner{}, "", nopLogger())
		assert.Equal(t, DefaultPkgConfigExe, s.exe)
	})

	t.Run("honors configured executable override", func(t *testing.T) {
		var existsChecked string
		runner := &helpers.MockCommandRunner{
			CommandExistsFunc: func(name string) bool {
				existsChecked = name
				return false
			},
		}
		s := newPkgConfigStrategy(runner, "aarch64-linux-gnu-pkg-config", nopLogger())

		out := s.Probe(ctx, "3.11")

		assert.True(t, out.Empty())
		assert.Equal(t, "aarch64-linux-gnu-pkg-config", existsChecked)
	})

	t.Run("queries the version-qualified embed package", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{
			CommandExistsFunc: func(string) bool { return true },
			RunCommandFunc: func(_ context.Context, _ string, args ...string) (string, error) {
				if args[0] == "--cflags-only-I" {
					return "-I/opt/python/include/python3.11", nil
				}
				return "-L/opt/python/lib -lpython3.11", nil
			},
		}
		s := newPkgConfigStrategy(runner, "", nopLogger())

		out := s.Probe(ctx, "3.11")

		assert.Equal(t, []string{"/opt/python/include/python3.11"}, out.IncludeDirs)
		assert.Equal(t, []string{"/opt/python/lib"}, out.LibraryDirs)
		assert.Equal(t, []string{"python3.11"}, out.Libraries)

		assert.Equal(t, [][]string{
			{"pkg-config", "--cflags-only-I", "python-3.11-embed"},
			{"pkg-config", "--libs", "python-3.11-embed"},
		}, runner.Calls)
	})

	t.Run("unknown package yields empty outcome", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{
			CommandExistsFunc: func(string) bool { return true },
			RunCommandFunc: func(context.Context, string, ...string) (string, error) {
				return "", errors.New("Package python-9.99-embed was not found")
			},
		}
		s := newPkgConfigStrategy(runner, "", nopLogger())

		out := s.Probe(ctx, "9.99")

		assert.True(t, out.Empty())
	})
}
