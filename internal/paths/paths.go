package paths

import (
	"os"
	"strings"
)

// Separator is the platform-native path separator byte.
const Separator = byte(os.PathSeparator)

// NormalizeSeparators converts every separator in p to the native style.
// Both slash directions are folded; a path never leaves this package with
// mixed separators.
func NormalizeSeparators(p string) string {
	if Separator == '/' {
		return strings.ReplaceAll(p, "\\", "/")
	}
	return strings.ReplaceAll(p, "/", "\\")
}

// EnsureTrailingSeparator returns p ending in exactly one native
// separator. An empty path is returned unchanged.
func EnsureTrailingSeparator(p string) string {
	if p == "" {
		return p
	}
	end := len(p)
	for end > 0 && p[end-1] == Separator {
		end--
	}
	return p[:end] + string(Separator)
}

// FixupDirectoryPath canonicalizes a directory path: native separators
// and a single trailing separator.
func FixupDirectoryPath(p string) string {
	return EnsureTrailingSeparator(NormalizeSeparators(p))
}

// RootPrefixEnd returns the index just past the non-creatable prefix of a
// normalized path: past the host segment for a network-share path (doubled
// leading separator followed by a host name), past the leading separator
// for a rooted path, 0 for a relative path. Hierarchy materialization
// starts its separator scan at this index.
func RootPrefixEnd(p string) int {
	if len(p) >= 2 && p[0] == Separator && p[1] == Separator {
		i := 0
		for i < len(p) && p[i] == Separator {
			i++ // leading separators
		}
		for i < len(p) && p[i] != Separator {
			i++ // host name
		}
		if i < len(p) {
			i++ // step into the first directory name
		}
		return i
	}
	if len(p) > 0 && p[0] == Separator {
		return 1
	}
	return 0
}
