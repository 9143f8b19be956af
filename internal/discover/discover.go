// Package discover locates the compiler and linker configuration needed to
// embed a CPython installation on the host.
//
// Discovery runs an ordered chain of independent probes: the per-version
// python-config helper, pkg-config, interpreter introspection via sysconfig,
// and a Windows filesystem fallback. Each probe yields a partial outcome and
// never fails hard; the chain stops at the first probe that finds anything.
package discover

import "errors"

// ErrPythonNotFound is returned when every strategy in the chain came back
// empty. It is the single hard failure discovery exposes.
var ErrPythonNotFound = errors.New("no Python build configuration found")

// Result is the aggregate handed to the build-integration layer. It is
// constructed once per Resolve call and never mutated afterwards.
type Result struct {
	// IncludeDirs are directories to search for Python headers.
	IncludeDirs []string `json:"include_dirs"`
	// LibraryDirs are directories to search for linkable libraries.
	LibraryDirs []string `json:"library_dirs"`
	// Libraries are bare library names, without -l prefix or extension.
	Libraries []string `json:"libraries"`
}

// Empty reports whether no strategy contributed anything to the result.
func (r *Result) Empty() bool {
	return len(r.IncludeDirs) == 0 && len(r.LibraryDirs) == 0 && len(r.Libraries) == 0
}

// Outcome is the partial result produced by a single strategy invocation.
// Paths and names keep their discovery order; duplicates are not removed.
type Outcome struct {
	IncludeDirs []string
	LibraryDirs []string
	Libraries   []string
}

// Empty reports whether the probe found nothing at all. The chain
// short-circuits on any nonempty field, even when the outcome is only
// partially useful (e.g. a library dir with no library names); tightening
// this condition would change linking behavior on partially-configured
// hosts.
func (o Outcome) Empty() bool {
	return len(o.IncludeDirs) == 0 && len(o.LibraryDirs) == 0 && len(o.Libraries) == 0
}

func (o *Outcome) merge(other Outcome) {
	o.IncludeDirs = append(o.IncludeDirs, other.IncludeDirs...)
	o.LibraryDirs = append(o.LibraryDirs, other.LibraryDirs...)
	o.Libraries = append(o.Libraries, other.Libraries...)
}
