package hierarchy

import (
	"github.com/vvka-141/fsio/internal/paths"
	"github.com/vvka-141/fsio/pkg/fsio"
)

// Builder creates directory hierarchies level by level.
type Builder struct {
	fs      fsio.FileSystem
	onError func(level string, err error)
}

// Option configures a Builder.
type Option func(*Builder)

// WithOnError installs a callback invoked with the level that could not
// be created and the underlying error. The boolean result is unaffected.
func WithOnError(fn func(level string, err error)) Option {
	return func(b *Builder) {
		b.onError = fn
	}
}

// New creates a directory hierarchy builder.
// Panics if fs is nil.
func New(fs fsio.FileSystem, opts ...Option) *Builder {
	if fs == nil {
		panic("fs cannot be nil")
	}
	b := &Builder{fs: fs}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// EnsurePathExists creates every missing level of path, shallowest
// first. Levels that already exist are fine. Returns true when the full
// hierarchy exists on return; a level that cannot be created stops the
// walk and leaves the levels built before it in place.
func (b *Builder) EnsurePathExists(path string) bool {
	if path == "" {
		return false
	}
	if b.fs.PathExists(path) {
		return true
	}

	full := paths.FixupDirectoryPath(path)
	start := paths.RootPrefixEnd(full)

	for i := start; i < len(full); i++ {
		if full[i] != paths.Separator {
			continue
		}
		level := full[:i]
		if i == start || full[i-1] == paths.Separator {
			continue
		}
		if b.fs.PathExists(level) {
			continue
		}
		if err := b.fs.CreateDirectory(level); err != nil {
			b.reportError(level, err)
			return false
		}
	}
	return true
}

func (b *Builder) reportError(level string, err error) {
	if b.onError != nil {
		b.onError(level, err)
	}
}

var _ fsio.PathBuilder = (*Builder)(nil)
