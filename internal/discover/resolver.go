package discover

import (
	"context"
	"runtime"

	"github.com/quantmind-br/pyconf/internal/helpers"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options configures a Resolver. Zero values select the host defaults.
type Options struct {
	// Runner executes external tools. Defaults to the real os/exec runner.
	Runner helpers.CommandRunner

	// Fs backs the Windows layout probe. Defaults to the host filesystem.
	Fs afero.Fs

	// GOOS is the target OS tag. Defaults to runtime.GOOS.
	GOOS string

	// PkgConfigExe overrides the pkg-config executable name.
	PkgConfigExe string

	// Logger receives per-strategy debug output. Defaults to a disabled
	// logger.
	Logger *zerolog.Logger
}

// Resolver runs the discovery chain. It holds no mutable state across calls;
// Resolve may be called repeatedly and is idempotent for an unchanged host.
type Resolver struct {
	goos       string
	strategies []Strategy
	fallback   *windowsStrategy
	log        *zerolog.Logger
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts Options) *Resolver {
	if opts.Runner == nil {
		opts.Runner = helpers.NewOSCommandRunner()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}

	return &Resolver{
		goos: opts.GOOS,
		strategies: []Strategy{
			newConfigToolStrategy(opts.Runner, opts.Logger),
			newPkgConfigStrategy(opts.Runner, opts.PkgConfigExe, opts.Logger),
			newInterpreterStrategy(opts.Runner, opts.Logger),
		},
		fallback: newWindowsStrategy(opts.Runner, opts.Fs, opts.Logger),
		log:      opts.Logger,
	}
}

// Resolve discovers the build configuration for the requested Python
// version. Strategies run in fixed priority order and the chain stops at the
// first one that finds anything; on Windows the filesystem fallback may then
// fill fields the winning strategy left empty. Returns ErrPythonNotFound
// when every probe came back empty.
func (r *Resolver) Resolve(ctx context.Context, version string) (*Result, error) {
	token := NormalizeVersion(version, r.goos)

	var res Result
	for _, s := range r.strategies {
		out := s.Probe(ctx, token)
		if out.Empty() {
			r.log.Debug().Str("strategy", s.Name()).Msg("strategy found nothing")
			continue
		}
		r.log.Debug().
			Str("strategy", s.Name()).
			Int("include_dirs", len(out.IncludeDirs)).
			Int("library_dirs", len(out.LibraryDirs)).
			Int("libraries", len(out.Libraries)).
			Msg("strategy succeeded")
		res.IncludeDirs = out.IncludeDirs
		res.LibraryDirs = out.LibraryDirs
		res.Libraries = out.Libraries
		break
	}

	// Windows distributions often satisfy none of the query tools; the
	// layout probe fills whatever is still missing.
	if r.goos == "windows" && (len(res.IncludeDirs) == 0 || len(res.LibraryDirs) == 0) {
		out := r.fallback.Probe(ctx, token)
		if len(res.IncludeDirs) == 0 {
			res.IncludeDirs = out.IncludeDirs
		}
		if len(res.LibraryDirs) == 0 {
			res.LibraryDirs = out.LibraryDirs
		}
	}

	if res.Empty() {
		return nil, ErrPythonNotFound
	}
	return &res, nil
}

// Token returns the normalized version token Resolve would use for the
// configured target.
func (r *Resolver) Token(version string) string {
	return NormalizeVersion(version, r.goos)
}
