package discover

import (
	"context"

	"github.com/quantmind-br/pyconf/internal/helpers"
	"github.com/rs/zerolog"
)

// DefaultPkgConfigExe is the pkg-config executable used when no override is
// configured. Cross-compilation setups commonly point the conventional
// PKG_CONFIG environment variable at a target-prefixed wrapper; that value
// is resolved into the strategy once, before the chain runs.
const DefaultPkgConfigExe = "pkg-config"

// pkgConfigStrategy queries the pkg-config database for the version-
// qualified embed package (python-3.11-embed and friends).
type pkgConfigStrategy struct {
	runner helpers.CommandRunner
	exe    string
	log    *zerolog.Logger
}

func newPkgConfigStrategy(runner helpers.CommandRunner, exe string, log *zerolog.Logger) *pkgConfigStrategy {
	if exe == "" {
		exe = DefaultPkgConfigExe
	}
	return &pkgConfigStrategy{runner: runner, exe: exe, log: log}
}

func (s *pkgConfigStrategy) Name() string { return "pkg-config" }

func (s *pkgConfigStrategy) Probe(ctx context.Context, token string) Outcome {
	if !s.runner.CommandExists(s.exe) {
		s.log.Debug().Str("exe", s.exe).Msg("pkg-config not found")
		return Outcome{}
	}

	pkg := "python-" + token + "-embed"

	var out Outcome

	if raw, err := s.runner.RunCommand(ctx, s.exe, "--cflags-only-I", pkg); err == nil {
		out.merge(parseFlags(raw, flagInclude))
	} else {
		s.log.Debug().Err(err).Str("pkg", pkg).Msg("pkg-config cflags query failed")
	}

	if raw, err := s.runner.RunCommand(ctx, s.exe, "--libs", pkg); err == nil {
		out.merge(parseFlags(raw, flagLibDir|flagLib))
	} else {
		s.log.Debug().Err(err).Str("pkg", pkg).Msg("pkg-config libs query failed")
	}

	return out
}
