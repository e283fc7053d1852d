package fsio

import (
	"io/fs"
	"time"
)

// DirEntry describes one enumerated filesystem object. Entries are
// produced transiently while listing a directory; the plain GetFiles
// enumeration keeps only the full matched path, while GetFilesEx and
// GetFileInfo retain the whole record.
type DirEntry struct {
	// Path is the full path: the normalized base path joined with the
	// relative path from that base, native separators only.
	Path string

	// Attributes holds the raw platform mode bits.
	Attributes fs.FileMode

	// LastWriteTime is the last modification time, at nanosecond
	// resolution where the platform allows it, coarser otherwise.
	LastWriteTime time.Time

	// Size is the file size in bytes.
	Size int64
}

// IsReadOnly reports whether the entry lacks the owner write permission.
func (e DirEntry) IsReadOnly() bool {
	return e.Attributes&0o200 == 0
}

// IsDir reports whether the entry is a directory. Enumeration results
// never contain directories; this is meaningful for GetFileInfo.
func (e DirEntry) IsDir() bool {
	return e.Attributes.IsDir()
}

// NewDirEntry builds a DirEntry from a full path and its FileInfo.
func NewDirEntry(path string, info fs.FileInfo) DirEntry {
	return DirEntry{
		Path:          path,
		Attributes:    info.Mode(),
		LastWriteTime: info.ModTime(),
		Size:          info.Size(),
	}
}
