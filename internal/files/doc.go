// Package files provides file-related functionality organized into sub-packages.
//
// This package has been refactored into the following sub-packages:
//   - filesystem: Filesystem abstraction and facade wrappers (OS and in-memory)
//   - enumerator: Wildcard directory enumeration, flat and recursive
//   - hierarchy: Level-by-level directory hierarchy materialization
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/fsio/internal/files/filesystem"
//	    "github.com/vvka-141/fsio/internal/files/enumerator"
//	    "github.com/vvka-141/fsio/internal/files/hierarchy"
//	)
//
//	fs := filesystem.NewOSFileSystem()
//
//	// Collect every .obj file under ./build
//	e := enumerator.New(fs, wildcard.New())
//	var results []string
//	e.GetFiles("./build", "*.obj", true, &results)
//
//	// Materialize an output hierarchy
//	b := hierarchy.New(fs)
//	b.EnsurePathExists("./build/out/cache")
//
// # Organization
//
// Each sub-package is focused on a specific concern:
//   - filesystem: Substitutable backend so the cores are testable in memory
//   - enumerator: Traversal policy and wildcard matching over the backend
//   - hierarchy: Idempotent path creation with per-level failure semantics
package files
