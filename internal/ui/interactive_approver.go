package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/fsio/pkg/fsio"
)

// InteractiveApprover gates destructive operations behind a typed
// confirmation. The user must type the final path component of the
// target to proceed.
type InteractiveApprover struct {
	in  io.Reader
	out io.Writer
}

// NewInteractiveApprover creates an approver reading from stdin and
// prompting on stderr.
func NewInteractiveApprover() fsio.Approver {
	return &InteractiveApprover{in: os.Stdin, out: os.Stderr}
}

// NewInteractiveApproverIO creates an approver with explicit streams.
func NewInteractiveApproverIO(in io.Reader, out io.Writer) fsio.Approver {
	return &InteractiveApprover{in: in, out: out}
}

// RequestApproval prompts the user to type the target's base name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	confirm := filepath.Base(target)

	fmt.Fprintf(a.out, "\n%s  WARNING: you are about to permanently remove '%s'\n",
		Render(WarningStyle, "!"), target)
	fmt.Fprintf(a.out, "\nTo confirm, type '%s' and press Enter: ", confirm)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.in)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == confirm {
			fmt.Fprintf(a.out, "%s Confirmed.\n", Render(SuccessStyle, SymbolCheck))
			return true, nil
		}
		fmt.Fprintf(a.out, "%s Input '%s' does not match '%s'. Operation cancelled.\n",
			Render(ErrorStyle, SymbolCross), input, confirm)
		return false, nil
	}
}

var _ fsio.Approver = (*InteractiveApprover)(nil)
