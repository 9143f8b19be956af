// Package pybuild wires a discovery result into a build graph. It is thin
// glue over package discover: everything here is either interface plumbing
// or flag rendering.
package pybuild

import (
	"context"
	"fmt"

	"github.com/quantmind-br/pyconf/internal/discover"
)

// Module is the handle to a compilation unit that will embed Python. The
// build system owning the module implements this; pybuild only drives it.
type Module interface {
	// AddIncludeDir registers a header search directory.
	AddIncludeDir(dir string)

	// AddLibraryDir registers a library search directory.
	AddLibraryDir(dir string)

	// LinkLibrary links a system library by bare name.
	LinkLibrary(name string)

	// SetPIC enables or disables position-independent code.
	SetPIC(enabled bool)

	// LinkLibC links the C standard library.
	LinkLibC()
}

// Apply registers every discovered path and library on the module, enables
// position-independent code and libc linkage (both mandatory for embedding
// CPython), and finally links the version-qualified interpreter library
// itself. Returns discover.ErrPythonNotFound when the result is empty.
func Apply(mod Module, res *discover.Result, token string) error {
	if res == nil || res.Empty() {
		return discover.ErrPythonNotFound
	}

	for _, dir := range res.IncludeDirs {
		mod.AddIncludeDir(dir)
	}
	for _, dir := range res.LibraryDirs {
		mod.AddLibraryDir(dir)
	}

	mod.SetPIC(true)
	mod.LinkLibC()

	for _, lib := range res.Libraries {
		mod.LinkLibrary(lib)
	}
	mod.LinkLibrary("python" + token)

	return nil
}

// Link resolves the build configuration for version and applies it to the
// module in one step. This is the entry point build integrations call.
func Link(ctx context.Context, mod Module, r *discover.Resolver, version string) error {
	res, err := r.Resolve(ctx, version)
	if err != nil {
		return fmt.Errorf("link python %s: %w", version, err)
	}
	return Apply(mod, res, r.Token(version))
}

// CFlags renders the compiler arguments for the discovered configuration.
func CFlags(res *discover.Result) []string {
	flags := make([]string, 0, len(res.IncludeDirs))
	for _, dir := range res.IncludeDirs {
		flags = append(flags, "-I"+dir)
	}
	return flags
}

// LDFlags renders the linker arguments for the discovered configuration,
// including the interpreter library for the given version token.
func LDFlags(res *discover.Result, token string) []string {
	flags := make([]string, 0, len(res.LibraryDirs)+len(res.Libraries)+1)
	for _, dir := range res.LibraryDirs {
		flags = append(flags, "-L"+dir)
	}
	for _, lib := range res.Libraries {
		flags = append(flags, "-l"+lib)
	}
	flags = append(flags, "-lpython"+token)
	return flags
}
