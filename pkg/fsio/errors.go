package fsio

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, fsio.ErrCreateFailed) {
//	    // a directory level could not be created
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound indicates the requested path does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrNotADirectory indicates a path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrCreateFailed indicates a directory level could not be created
	// for a reason other than already existing.
	ErrCreateFailed = errors.New("directory creation failed")

	// ErrCopyFailed indicates a file copy or move did not complete.
	ErrCopyFailed = errors.New("file transfer failed")

	// ErrOverwriteDenied indicates a copy refused to replace an
	// existing destination because overwrite was not allowed.
	ErrOverwriteDenied = errors.New("destination exists and overwrite not allowed")

	// ErrApprovalDenied indicates the user denied approval for a
	// destructive operation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrReleaseTimeout indicates a file was still locked by the OS
	// when the bounded release wait expired.
	ErrReleaseTimeout = errors.New("file release wait timed out")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrNotADirectory):
		return ExitNotFound
	case errors.Is(err, ErrCreateFailed):
		return ExitCreateFailed
	case errors.Is(err, ErrOverwriteDenied):
		return ExitTransferFailed
	case errors.Is(err, ErrCopyFailed):
		return ExitTransferFailed
	case errors.Is(err, ErrReleaseTimeout):
		return ExitReleaseTimeout
	}

	// Check for cobra argument/flag parse errors
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "accepts") && strings.Contains(errStr, "arg(s)") {
		return ExitUsageError
	}

	return ExitGeneralError
}
