// Package wildcard matches single filename segments against glob patterns.
//
// Patterns support '*' (any run of characters) and '?' (exactly one
// character). A pattern applies to one path segment only; it is never
// matched across separators, and directory names are never filtered with
// it during recursion.
package wildcard

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/fsio/pkg/fsio"
)

// Matcher implements fsio.Matcher on top of doublestar.
type Matcher struct{}

// New creates a wildcard matcher.
func New() *Matcher {
	return &Matcher{}
}

// Match reports whether name matches pattern. An empty pattern matches
// every name. A malformed pattern yields doublestar.ErrBadPattern.
func (m *Matcher) Match(pattern, name string) (bool, error) {
	if pattern == "" {
		return true, nil
	}
	return doublestar.Match(pattern, name)
}

// Verify Matcher implements the interface at compile time
var _ fsio.Matcher = (*Matcher)(nil)
