// Package fsio defines the public contracts for the filesystem layer.
//
// The fsio package contains:
//   - Interfaces for the substitutable filesystem facade and the core
//     enumeration/hierarchy operations
//   - Shared types (DirEntry) used by enumeration results
//   - Sentinel errors and semantic exit codes
//   - The pluggable Logger, BackoffStrategy and ErrorClassifier contracts
//
// Implementations live in internal packages: the afero-backed facade in
// internal/files/filesystem, the directory enumerator in
// internal/files/enumerator, and the path hierarchy builder in
// internal/files/hierarchy. Callers depend on the interfaces defined here,
// which allows every core to be tested against an in-memory filesystem.
package fsio
