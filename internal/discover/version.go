package discover

import "strings"

// NormalizeVersion converts a raw Python version string into the token form
// the target platform uses for executable and library names. Windows Python
// distributions drop the dot ("3.11" becomes "311"); everywhere else the
// version is used as-is.
func NormalizeVersion(version, goos string) string {
	if goos == "windows" {
		return strings.ReplaceAll(version, ".", "")
	}
	return version
}
