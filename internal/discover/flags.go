package discover

import "strings"

// flagMask selects which flag classes parseFlags extracts.
type flagMask uint8

const (
	flagInclude flagMask = 1 << iota // -I<dir>
	flagLibDir                       // -L<dir>
	flagLib                          // -l<name>
)

// noneSentinel is what CPython's sysconfig prints for an unset config
// variable. It must be treated as absent, never as a literal value.
const noneSentinel = "None"

// parseFlags tokenizes raw compiler/linker output and extracts the values of
// the requested flag classes, in the order they appear.
//
// Both the joined form ("-I/usr/include") and the split form ("-I"
// "/usr/include") are recognized. Tokens that match no requested class are
// ignored. Nothing is deduplicated or sorted.
func parseFlags(raw string, want flagMask) Outcome {
	var out Outcome

	// pending is the flag class waiting for its value in the split form.
	var pending flagMask

	for _, tok := range strings.Fields(raw) {
		if pending != 0 {
			appendValue(&out, pending, tok)
			pending = 0
			continue
		}

		switch {
		case want&flagInclude != 0 && strings.HasPrefix(tok, "-I"):
			if tok == "-I" {
				pending = flagInclude
			} else {
				appendValue(&out, flagInclude, tok[2:])
			}
		case want&flagLibDir != 0 && strings.HasPrefix(tok, "-L"):
			if tok == "-L" {
				pending = flagLibDir
			} else {
				appendValue(&out, flagLibDir, tok[2:])
			}
		case want&flagLib != 0 && strings.HasPrefix(tok, "-l"):
			if tok == "-l" {
				pending = flagLib
			} else {
				appendValue(&out, flagLib, tok[2:])
			}
		}
	}

	return out
}

func appendValue(out *Outcome, class flagMask, value string) {
	if value == "" || value == noneSentinel {
		return
	}
	switch class {
	case flagInclude:
		out.IncludeDirs = append(out.IncludeDirs, value)
	case flagLibDir:
		out.LibraryDirs = append(out.LibraryDirs, value)
	case flagLib:
		out.Libraries = append(out.Libraries, value)
	}
}
