package discover

import (
	"context"
	"strings"

	"github.com/quantmind-br/pyconf/internal/helpers"
	"github.com/rs/zerolog"
)

// Queries the interpreter runs with -c. sysconfig prints the literal string
// "None" for unset config variables; callers must filter it.
const (
	queryIncludeDir = `import sysconfig; print(sysconfig.get_path("include"))`
	queryLibDir     = `import sysconfig; print(sysconfig.get_config_var("LIBDIR"))`
	queryBldLibrary = `import sysconfig; print(sysconfig.get_config_var("BLDLIBRARY"))`
)

// interpreterStrategy asks the interpreter itself, via three independent
// sysconfig queries. Each sub-query fails in isolation: a broken LIBDIR does
// not prevent the include path from being collected.
type interpreterStrategy struct {
	runner helpers.CommandRunner
	log    *zerolog.Logger
}

func newInterpreterStrategy(runner helpers.CommandRunner, log *zerolog.Logger) *interpreterStrategy {
	return &interpreterStrategy{runner: runner, log: log}
}

func (s *interpreterStrategy) Name() string { return "interpreter" }

// findInterpreter picks the versioned executable when available, falling
// back to the generic python3 name.
func (s *interpreterStrategy) findInterpreter(token string) string {
	for _, exe := range []string{"python" + token, "python3"} {
		if s.runner.CommandExists(exe) {
			return exe
		}
	}
	return ""
}

func (s *interpreterStrategy) Probe(ctx context.Context, token string) Outcome {
	exe := s.findInterpreter(token)
	if exe == "" {
		s.log.Debug().Str("token", token).Msg("no interpreter found")
		return Outcome{}
	}

	var out Outcome

	if dir := s.query(ctx, exe, queryIncludeDir); dir != "" {
		out.IncludeDirs = append(out.IncludeDirs, dir)
	}
	if dir := s.query(ctx, exe, queryLibDir); dir != "" {
		out.LibraryDirs = append(out.LibraryDirs, dir)
	}
	if raw, err := s.runner.RunCommand(ctx, exe, "-c", queryBldLibrary); err == nil {
		out.merge(parseFlags(raw, flagLib))
	} else {
		s.log.Debug().Err(err).Str("exe", exe).Msg("BLDLIBRARY query failed")
	}

	return out
}

// query runs one sysconfig sub-query and returns its trimmed output, or ""
// when the query failed or the variable is unset.
func (s *interpreterStrategy) query(ctx context.Context, exe, code string) string {
	raw, err := s.runner.RunCommand(ctx, exe, "-c", code)
	if err != nil {
		s.log.Debug().Err(err).Str("exe", exe).Msg("sysconfig query failed")
		return ""
	}
	value := strings.TrimSpace(raw)
	if value == noneSentinel {
		return ""
	}
	return value
}
