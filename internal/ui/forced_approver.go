package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/fsio/pkg/fsio"
)

// ForcedApprover approves every request without prompting, used when
// the --force flag is provided or no terminal is attached. It still
// prints what is about to happen so logs show the decision.
type ForcedApprover struct {
	out io.Writer
}

// NewForcedApprover creates an approver that always approves.
func NewForcedApprover() fsio.Approver {
	return &ForcedApprover{out: os.Stderr}
}

// NewForcedApproverIO creates a forced approver with an explicit output stream.
func NewForcedApproverIO(out io.Writer) fsio.Approver {
	return &ForcedApprover{out: out}
}

// RequestApproval approves immediately.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(a.out, "%s Removing '%s' without confirmation (--force).\n",
		Render(WarningStyle, "!"), target)
	return true, nil
}

var _ fsio.Approver = (*ForcedApprover)(nil)
