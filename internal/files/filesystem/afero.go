package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/vvka-141/fsio/pkg/fsio"
)

// AferoFileSystem adapts an afero.Fs to the fsio.FileSystem facade and
// carries the one-to-one wrapper operations over native calls.
// Stateless per call; safe for concurrent use.
type AferoFileSystem struct {
	fs afero.Fs
}

// NewOSFileSystem creates a facade backed by the real filesystem.
func NewOSFileSystem() *AferoFileSystem {
	return &AferoFileSystem{fs: afero.NewOsFs()}
}

// NewMemoryFileSystem creates a facade backed by an in-memory filesystem.
// This is primarily useful for testing the cores without a real disk.
func NewMemoryFileSystem() *AferoFileSystem {
	return &AferoFileSystem{fs: afero.NewMemMapFs()}
}

// NewFromAfero wraps an arbitrary afero.Fs. Panics if base is nil.
func NewFromAfero(base afero.Fs) *AferoFileSystem {
	if base == nil {
		panic("base filesystem cannot be nil")
	}
	return &AferoFileSystem{fs: base}
}

// Fs exposes the underlying afero filesystem for helpers like afero.WriteFile.
func (a *AferoFileSystem) Fs() afero.Fs {
	return a.fs
}

// PathExists reports whether path exists at all (file or directory).
func (a *AferoFileSystem) PathExists(path string) bool {
	_, err := a.fs.Stat(path)
	return err == nil
}

// IsDirectory reports whether path exists and is a directory.
func (a *AferoFileSystem) IsDirectory(path string) bool {
	info, err := a.fs.Stat(path)
	return err == nil && info.IsDir()
}

// CreateDirectory creates a single directory level. A level that already
// exists is success, not failure; anything else (missing intermediate
// folders, invalid name, permissions) is returned to the caller.
func (a *AferoFileSystem) CreateDirectory(path string) error {
	err := a.fs.Mkdir(path, fsio.DefaultDirPerm)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}
	return err
}

// ListDirectory returns the entries directly inside path. The synthetic
// "." and ".." entries are never included. Order is OS-defined.
func (a *AferoFileSystem) ListDirectory(path string) ([]fs.FileInfo, error) {
	return afero.ReadDir(a.fs, path)
}

// Stat returns metadata for a single path.
func (a *AferoFileSystem) Stat(path string) (fs.FileInfo, error) {
	return a.fs.Stat(path)
}

// Open opens a file for reading.
func (a *AferoFileSystem) Open(path string) (io.ReadCloser, error) {
	return a.fs.Open(path)
}

// FileExists reports whether path exists and is not a directory.
func (a *AferoFileSystem) FileExists(path string) bool {
	info, err := a.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// FileDelete removes a file. Returns false if the file could not be removed.
func (a *AferoFileSystem) FileDelete(path string) bool {
	return a.fs.Remove(path) == nil
}

// FileCopy copies src to dst, preserving mode and last-write time.
// When allowOverwrite is false an existing destination is refused. When
// it is true and the first attempt fails against a read-only destination,
// the write-protection flag is cleared and the copy retried once.
func (a *AferoFileSystem) FileCopy(src, dst string, allowOverwrite bool) bool {
	if !allowOverwrite && a.PathExists(dst) {
		return false
	}

	if err := a.copyContents(src, dst); err == nil {
		return true
	}

	if !allowOverwrite {
		return false
	}

	// see if the destination is read-only
	info, err := a.fs.Stat(dst)
	if err != nil {
		return false // can't even get the attributes, nothing more we can do
	}
	if info.Mode()&0o200 != 0 {
		return false // not read-only, so we don't know what the problem is
	}

	if a.fs.Chmod(dst, info.Mode()|0o200) != nil {
		return false // failed to clear the read-only flag
	}

	return a.copyContents(src, dst) == nil
}

func (a *AferoFileSystem) copyContents(src, dst string) error {
	in, err := a.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := a.fs.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := a.fs.Chmod(dst, info.Mode()); err != nil {
		return err
	}
	return a.fs.Chtimes(dst, info.ModTime(), info.ModTime())
}

// FileMove renames src to dst, replacing an existing destination.
func (a *AferoFileSystem) FileMove(src, dst string) bool {
	if a.FileExists(dst) {
		if a.fs.Remove(dst) != nil {
			return false
		}
	}
	return a.fs.Rename(src, dst) == nil
}

// GetFileInfo returns the metadata record for a single path and whether
// the path exists.
func (a *AferoFileSystem) GetFileInfo(path string) (fsio.DirEntry, bool) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return fsio.DirEntry{}, false
	}
	return fsio.NewDirEntry(path, info), true
}

// GetFileLastWriteTime returns the last modification time of path, or the
// zero time if the path cannot be queried.
func (a *AferoFileSystem) GetFileLastWriteTime(path string) time.Time {
	info, err := a.fs.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// SetFileLastWriteTime stamps path with the given last-write time.
func (a *AferoFileSystem) SetFileLastWriteTime(path string, t time.Time) bool {
	return a.fs.Chtimes(path, t, t) == nil
}

// SetReadOnly sets or clears write protection on path. Setting a state
// that is already in effect is a no-op success.
func (a *AferoFileSystem) SetReadOnly(path string, readOnly bool) bool {
	info, err := a.fs.Stat(path)
	if err != nil {
		return false
	}

	var newMode fs.FileMode
	if readOnly {
		newMode = info.Mode() &^ 0o222
	} else {
		newMode = info.Mode() | 0o200
	}

	if newMode == info.Mode() {
		return true
	}
	return a.fs.Chmod(path, newMode) == nil
}

// GetReadOnly reports whether path is write-protected. A path that cannot
// be queried is treated as not read-only.
func (a *AferoFileSystem) GetReadOnly(path string) bool {
	info, err := a.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&0o200 == 0
}

// GetTempDir returns the platform temp directory with a trailing separator.
func (a *AferoFileSystem) GetTempDir() string {
	return afero.GetTempDir(a.fs, "")
}

// CreateTempPath claims a unique path in the temp directory, creating an
// empty file named prefix plus a UUID, and returns it.
func (a *AferoFileSystem) CreateTempPath(prefix string) (string, error) {
	if prefix == "" {
		prefix = fsio.DefaultTempPrefix
	}
	path := a.GetTempDir() + prefix + "-" + uuid.NewString()

	f, err := a.fs.Create(path)
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// GetCurrentDir returns the process working directory. Process-wide state,
// meaningful only against the real filesystem.
func GetCurrentDir() (string, error) {
	return os.Getwd()
}

// SetCurrentDir changes the process working directory.
func SetCurrentDir(dir string) error {
	return os.Chdir(dir)
}

// Verify AferoFileSystem implements the facade at compile time
var _ fsio.FileSystem = (*AferoFileSystem)(nil)
