package retry

import (
	"context"
	"errors"

	"github.com/vvka-141/fsio/pkg/fsio"
)

// FileAccessClassifier implements fsio.ErrorClassifier for file access
// errors during a release wait.
//
// The delayed-release quirk presents as arbitrary open failures (sharing
// violations, transient access denials) that clear on their own, so every
// filesystem error is treated as transient. The only fatal conditions are
// context cancellation and deadline expiry, which end the wait.
type FileAccessClassifier struct{}

// NewFileAccessClassifier creates a new file access error classifier.
func NewFileAccessClassifier() *FileAccessClassifier {
	return &FileAccessClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *FileAccessClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// Verify FileAccessClassifier implements the interface at compile time
var _ fsio.ErrorClassifier = (*FileAccessClassifier)(nil)
