package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// ExpandHome replaces a leading "~" with home and normalizes the result.
// Other paths are returned unchanged.
func ExpandHome(p, home string) string {
	if home == "" {
		return p
	}
	switch {
	case p == "~":
		return NormalizePath(home)
	case strings.HasPrefix(p, "~/"), strings.HasPrefix(p, "~\\"):
		return NormalizePath(filepath.Join(home, p[2:]))
	default:
		return p
	}
}

// IsFileDSN reports whether a sqlite DSN names a plain file path rather than
// a URI or an in-memory database.
func IsFileDSN(dsn string) bool {
	return dsn != "" &&
		!strings.HasPrefix(dsn, "file:") &&
		!strings.HasPrefix(dsn, ":memory:") &&
		!strings.Contains(dsn, "?")
}
