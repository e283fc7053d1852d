package fsio

import "context"

// Approver gates destructive filesystem operations such as recursive
// removal. Implementations decide whether the operation on target may
// proceed.
type Approver interface {
	// RequestApproval asks for confirmation to operate on target.
	// Returns (false, nil) when the user declines; an error only when
	// the approval flow itself fails.
	RequestApproval(ctx context.Context, target string) (bool, error)
}
