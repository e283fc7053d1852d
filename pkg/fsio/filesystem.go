package fsio

import (
	"context"
	"io"
	"io/fs"
)

// FileSystem is the substitutable facade over the native filesystem.
// The enumeration and hierarchy cores depend only on this interface,
// never on the os package directly, so they can be exercised against an
// in-memory filesystem in tests.
//
// Implementations must be stateless per call: concurrent calls from
// multiple goroutines are safe as long as each caller owns its own
// result container.
type FileSystem interface {
	// PathExists reports whether path exists at all (file or directory).
	PathExists(path string) bool

	// IsDirectory reports whether path exists and is a directory.
	IsDirectory(path string) bool

	// CreateDirectory creates a single directory level. Creating a
	// directory that already exists is success, not failure, which keeps
	// hierarchy materialization idempotent. Parent levels must already
	// exist.
	CreateDirectory(path string) error

	// ListDirectory returns the entries directly inside path. Order is
	// whatever the underlying primitive yields; callers must not assume
	// lexical sort. The synthetic "." and ".." entries are never included.
	ListDirectory(path string) ([]fs.FileInfo, error)

	// Stat returns metadata for a single path.
	Stat(path string) (fs.FileInfo, error)

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)
}

// Matcher matches a single filename segment against a wildcard pattern.
// Patterns support '*' (any run of characters) and '?' (exactly one
// character), applied to one path segment, never across separators.
type Matcher interface {
	// Match reports whether name matches pattern. An empty pattern
	// matches every name. A malformed pattern yields an error.
	Match(pattern, name string) (bool, error)
}

// FileEnumerator walks one or more directory levels collecting files
// that match a wildcard pattern.
type FileEnumerator interface {
	// GetFiles appends the full path of every matching regular file at
	// path (or, when recurse is set, at any depth below it) to results.
	// It returns true iff at least one entry was appended by this call.
	// Directories are never included, even when the pattern matches
	// their name. A base directory that does not exist or cannot be
	// opened contributes nothing and is not an error.
	GetFiles(path, pattern string, recurse bool, results *[]string) bool

	// GetFilesEx behaves like GetFiles but retains full DirEntry
	// records including attributes, last-write time and size.
	GetFilesEx(path, pattern string, recurse bool, results *[]DirEntry) bool
}

// PathBuilder materializes directory hierarchies.
type PathBuilder interface {
	// EnsurePathExists creates every missing intermediate directory of
	// path, shallow to deep, and reports whether the full hierarchy
	// exists on return. A failed call may leave a partial hierarchy
	// behind; no rollback is performed.
	EnsurePathExists(path string) bool
}

// FileReleaseWaiter blocks until a just-closed file can be reopened.
// Some platforms delay releasing a file after close; subsequent
// operations on the same file can fail until the release completes.
type FileReleaseWaiter interface {
	// WaitForRelease polls the file until it can be opened for reading
	// or the context deadline expires, in which case it returns an
	// error wrapping ErrReleaseTimeout.
	WaitForRelease(ctx context.Context, path string) error
}
