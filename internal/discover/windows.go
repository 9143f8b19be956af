package discover

import (
	"context"
	"path/filepath"

	"github.com/quantmind-br/pyconf/internal/helpers"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// windowsStrategy probes the conventional layout of Windows Python
// distributions, which ship headers and import libraries next to the
// interpreter (Include\ and libs\) rather than exposing them through any
// query tool.
//
// Unlike the other strategies it runs as a gap filler: it may execute after
// an earlier strategy partially succeeded, and it only contributes to fields
// that are still empty.
type windowsStrategy struct {
	runner helpers.CommandRunner
	fs     afero.Fs
	log    *zerolog.Logger
}

func newWindowsStrategy(runner helpers.CommandRunner, fs afero.Fs, log *zerolog.Logger) *windowsStrategy {
	return &windowsStrategy{runner: runner, fs: fs, log: log}
}

func (s *windowsStrategy) Name() string { return "windows-layout" }

func (s *windowsStrategy) Probe(ctx context.Context, token string) Outcome {
	exe := s.findInterpreter(token)
	if exe == "" {
		s.log.Debug().Str("token", token).Msg("no interpreter on PATH for layout probe")
		return Outcome{}
	}

	root := filepath.Dir(exe)

	var out Outcome
	if dir := filepath.Join(root, "Include"); s.dirExists(dir) {
		out.IncludeDirs = append(out.IncludeDirs, dir)
	}
	if dir := filepath.Join(root, "libs"); s.dirExists(dir) {
		out.LibraryDirs = append(out.LibraryDirs, dir)
	}
	return out
}

func (s *windowsStrategy) findInterpreter(token string) string {
	for _, name := range []string{"python" + token, "python3", "python"} {
		if path, err := s.runner.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

func (s *windowsStrategy) dirExists(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && info.IsDir()
}
