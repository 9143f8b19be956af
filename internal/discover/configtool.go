package discover

import (
	"context"

	"github.com/quantmind-br/pyconf/internal/helpers"
	"github.com/rs/zerolog"
)

// configToolStrategy asks the per-version python-config helper that ships
// with CPython development packages. It is the most authoritative source
// when present, so it runs first.
type configToolStrategy struct {
	runner helpers.CommandRunner
	log    *zerolog.Logger
}

func newConfigToolStrategy(runner helpers.CommandRunner, log *zerolog.Logger) *configToolStrategy {
	return &configToolStrategy{runner: runner, log: log}
}

func (s *configToolStrategy) Name() string { return "python-config" }

func (s *configToolStrategy) Probe(ctx context.Context, token string) Outcome {
	exe := "python" + token + "-config"
	if !s.runner.CommandExists(exe) {
		s.log.Debug().Str("exe", exe).Msg("config tool not found")
		return Outcome{}
	}

	var out Outcome

	if raw, err := s.runner.RunCommand(ctx, exe, "--embed", "--includes"); err == nil {
		out.merge(parseFlags(raw, flagInclude))
	} else {
		s.log.Debug().Err(err).Str("exe", exe).Msg("config tool --includes failed")
	}

	if raw, err := s.runner.RunCommand(ctx, exe, "--embed", "--ldflags"); err == nil {
		out.merge(parseFlags(raw, flagLibDir|flagLib))
	} else {
		s.log.Debug().Err(err).Str("exe", exe).Msg("config tool --ldflags failed")
	}

	return out
}
