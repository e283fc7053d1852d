package filesystem

import (
	"context"
	"errors"
	"fmt"

	"github.com/vvka-141/fsio/internal/retry"
	"github.com/vvka-141/fsio/pkg/fsio"
)

// WaitForRelease polls path until it can be reopened for reading.
//
// Some platforms briefly hold a file locked after it is closed (virus
// scanners, kernel delayed release); subsequent operations on the file
// fail until the lock clears. Reopening until success papers over the
// quirk. The wait is bounded: if ctx carries no deadline, a default of
// fsio.DefaultReleaseTimeout is applied, and expiry surfaces as an error
// wrapping fsio.ErrReleaseTimeout rather than blocking forever.
func (a *AferoFileSystem) WaitForRelease(ctx context.Context, path string) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, fsio.DefaultReleaseTimeout)
		defer cancel()
	}

	strategy := retry.NewExponentialBackoff(-1,
		retry.WithInitialDelay(fsio.DefaultReleaseInitialDelay),
		retry.WithMaxDelay(fsio.DefaultReleaseMaxDelay),
	)
	executor := retry.NewExecutor(retry.NewFileAccessClassifier(), strategy)

	err := executor.Execute(ctx, func(ctx context.Context) error {
		f, err := a.Open(path)
		if err != nil {
			return err
		}
		return f.Close()
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", path, fsio.ErrReleaseTimeout)
		}
		return err
	}
	return nil
}

// Verify AferoFileSystem implements the waiter at compile time
var _ fsio.FileReleaseWaiter = (*AferoFileSystem)(nil)
