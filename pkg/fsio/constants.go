package fsio

import (
	"io/fs"
	"time"
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Operation completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or parameters
	ExitApprovalDenied = 12 // User denied removal approval
	ExitNotFound       = 20 // Requested path does not exist
	ExitCreateFailed   = 21 // Directory hierarchy could not be created
	ExitTransferFailed = 22 // Copy or move failed
	ExitReleaseTimeout = 23 // File still locked when release wait expired
)

const (
	// DefaultWildcard matches every filename.
	DefaultWildcard = "*"

	// DefaultDirPerm is the mode used when creating directory levels.
	// The process umask still applies.
	DefaultDirPerm fs.FileMode = 0o777

	// DefaultReleaseTimeout bounds the wait for the OS to release a
	// just-closed file.
	DefaultReleaseTimeout = 1 * time.Second

	// DefaultReleaseInitialDelay is the delay before the first reopen
	// retry while waiting for a file release.
	DefaultReleaseInitialDelay = 1 * time.Millisecond

	// DefaultReleaseMaxDelay caps the backoff between reopen retries.
	DefaultReleaseMaxDelay = 50 * time.Millisecond

	// DefaultTempPrefix is the prefix used for generated temp paths.
	DefaultTempPrefix = "fsio"
)
