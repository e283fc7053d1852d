// Package filesystem implements the fsio.FileSystem facade on top of afero.
//
// The filesystem package is responsible for:
//   - The substitutable primitives the enumeration and hierarchy cores
//     consume (existence checks, single-level creation, directory listing)
//   - The one-to-one wrapper operations over native calls: file existence,
//     delete, copy, move, attribute get/set, temp paths
//   - The bounded wait for an OS-level delayed file release
//
// Production code uses NewOSFileSystem; tests use NewMemoryFileSystem,
// which backs the same adapter with an in-memory afero filesystem so the
// cores can be exercised without touching the real disk.
package filesystem
