// Package hierarchy materializes directory hierarchies one level at a
// time.
//
// Responsibilities:
//   - Normalize the requested path to native separators before walking it.
//   - Skip the non-creatable root prefix (drive or share root) and create
//     every remaining level in order, treating already-existing levels as
//     success.
//   - Stop at the first level that cannot be created, leaving the levels
//     built so far in place.
package hierarchy
