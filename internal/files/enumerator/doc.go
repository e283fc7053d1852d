// Package enumerator implements directory enumeration with wildcard
// filtering.
//
// The enumerator package is responsible for:
//   - Walking one directory level or a whole subtree depth-first
//   - Matching file names against a wildcard pattern via fsio.Matcher
//   - Collecting matches as plain paths or full DirEntry records
//
// Traversal recurses into the subdirectories of a level before scanning
// that level's files, so entries from deeper directories always precede
// their parent level's files in the output. Sibling order within a level
// is whatever the directory-listing primitive yields.
//
// A directory that does not exist or cannot be opened contributes nothing
// and is not an error; callers that need to tell an empty directory from
// an unreadable one can register an OnError callback.
package enumerator
