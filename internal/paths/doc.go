// Package paths canonicalizes filesystem paths for the enumeration and
// hierarchy cores.
//
// The paths package is responsible for:
//   - Normalizing slash direction to the platform-native separator
//   - Guaranteeing a single trailing separator on directory paths
//   - Locating the end of a root or network-share prefix so hierarchy
//     materialization never attempts to create the root itself
//
// All functions are pure; they operate on string values and never touch
// the filesystem.
package paths
