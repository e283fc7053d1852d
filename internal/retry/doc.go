// Package retry provides automatic retry logic with exponential backoff
// for transient filesystem failures.
//
// The package supports pluggable error classification and backoff strategies.
// Its primary consumer is the bounded wait for an OS-level delayed file
// release, where a just-closed file briefly refuses to reopen.
//
// # Example Usage
//
//	classifier := retry.NewFileAccessClassifier()
//	strategy := retry.NewExponentialBackoff(-1, retry.WithInitialDelay(time.Millisecond))
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return reopenFile(path)
//	})
//
// # Error Classification
//
// The fsio.ErrorClassifier interface determines which errors are transient
// (retryable) versus fatal (non-retryable). The FileAccessClassifier treats
// every filesystem error as transient until the context deadline expires,
// matching the shape of the delayed-release quirk where the only exit
// conditions are success and timeout.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
