package enumerator

import (
	"github.com/vvka-141/fsio/internal/paths"
	"github.com/vvka-141/fsio/pkg/fsio"
)

// Enumerator discovers files in a directory tree through the filesystem
// facade. Safe for concurrent use by multiple goroutines as long as each
// call appends into its own result slice.
type Enumerator struct {
	fs      fsio.FileSystem
	matcher fsio.Matcher
	onError func(dir string, err error)
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithOnError registers a callback invoked with every directory that
// could not be listed during a traversal. Without it, unreadable and
// empty directories are indistinguishable, by the boolean contract.
func WithOnError(fn func(dir string, err error)) Option {
	return func(e *Enumerator) {
		e.onError = fn
	}
}

// New creates an enumerator over the given facade and matcher.
// Panics if fs or matcher is nil.
func New(fs fsio.FileSystem, matcher fsio.Matcher, opts ...Option) *Enumerator {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	e := &Enumerator{fs: fs, matcher: matcher}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GetFiles appends the full path of every regular file under path whose
// name matches pattern. With recurse set, the whole subtree is walked;
// otherwise only the single level at path. Returns true iff at least one
// entry was appended by this call. Panics if results is nil.
func (e *Enumerator) GetFiles(path, pattern string, recurse bool, results *[]string) bool {
	if results == nil {
		panic("results cannot be nil")
	}

	oldLen := len(*results)
	base := paths.FixupDirectoryPath(path)
	if recurse {
		e.getFilesRecurse(base, pattern, results)
	} else {
		e.getFilesNoRecurse(base, pattern, results)
	}
	return len(*results) != oldLen
}

// GetFilesEx behaves like GetFiles but retains full DirEntry records,
// populating attributes, last-write time and size from the listing.
func (e *Enumerator) GetFilesEx(path, pattern string, recurse bool, results *[]fsio.DirEntry) bool {
	if results == nil {
		panic("results cannot be nil")
	}

	oldLen := len(*results)
	base := paths.FixupDirectoryPath(path)
	if recurse {
		e.getFilesRecurseEx(base, pattern, results)
	} else {
		e.getFilesNoRecurseEx(base, pattern, results)
	}
	return len(*results) != oldLen
}

// getFilesRecurse walks dir depth-first. dir always carries a trailing
// separator. Subdirectories are recursed into before this level's files
// are matched.
func (e *Enumerator) getFilesRecurse(dir, pattern string, results *[]string) {
	entries, err := e.fs.ListDirectory(dir)
	if err != nil {
		e.reportError(dir, err)
		return
	}

	// recurse into directories
	for _, entry := range entries {
		if !entry.IsDir() || isDotEntry(entry.Name()) {
			continue
		}
		e.getFilesRecurse(dir+entry.Name()+string(paths.Separator), pattern, results)
	}

	// do files in this directory
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if e.matches(pattern, entry.Name()) {
			*results = append(*results, dir+entry.Name())
		}
	}
}

func (e *Enumerator) getFilesNoRecurse(dir, pattern string, results *[]string) {
	entries, err := e.fs.ListDirectory(dir)
	if err != nil {
		e.reportError(dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if e.matches(pattern, entry.Name()) {
			*results = append(*results, dir+entry.Name())
		}
	}
}

func (e *Enumerator) getFilesRecurseEx(dir, pattern string, results *[]fsio.DirEntry) {
	entries, err := e.fs.ListDirectory(dir)
	if err != nil {
		e.reportError(dir, err)
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() || isDotEntry(entry.Name()) {
			continue
		}
		e.getFilesRecurseEx(dir+entry.Name()+string(paths.Separator), pattern, results)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if e.matches(pattern, entry.Name()) {
			*results = append(*results, fsio.NewDirEntry(dir+entry.Name(), entry))
		}
	}
}

func (e *Enumerator) getFilesNoRecurseEx(dir, pattern string, results *[]fsio.DirEntry) {
	entries, err := e.fs.ListDirectory(dir)
	if err != nil {
		e.reportError(dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if e.matches(pattern, entry.Name()) {
			*results = append(*results, fsio.NewDirEntry(dir+entry.Name(), entry))
		}
	}
}

func (e *Enumerator) matches(pattern, name string) bool {
	ok, err := e.matcher.Match(pattern, name)
	if err != nil {
		return false
	}
	return ok
}

func (e *Enumerator) reportError(dir string, err error) {
	if e.onError != nil {
		e.onError(dir, err)
	}
}

// isDotEntry reports whether name is one of the synthetic "this
// directory" or "parent directory" pseudo-entries.
func isDotEntry(name string) bool {
	return name == "." || name == ".."
}

// Verify Enumerator implements the interface at compile time
var _ fsio.FileEnumerator = (*Enumerator)(nil)
