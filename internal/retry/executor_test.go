package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// alwaysTransient treats every non-nil error as retryable.
type alwaysTransient struct{}

func (alwaysTransient) IsTransient(err error) bool { return err != nil }

// neverTransient treats every error as fatal.
type neverTransient struct{}

func (neverTransient) IsTransient(err error) bool { return false }

func fastBackoff(maxAttempts int) *ExponentialBackoff {
	return NewExponentialBackoff(maxAttempts,
		WithInitialDelay(time.Microsecond),
		WithMaxDelay(time.Microsecond),
		WithJitter(0),
	)
}

func TestNewExecutor_NilArgs(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil classifier", func() { NewExecutor(nil, fastBackoff(1)) }},
		{"nil strategy", func() { NewExecutor(alwaysTransient{}, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestExecutor_SuccessFirstAttempt(t *testing.T) {
	exec := NewExecutor(alwaysTransient{}, fastBackoff(3))

	calls := 0
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("operation called %d times, want 1", calls)
	}
}

func TestExecutor_RetriesUntilSuccess(t *testing.T) {
	exec := NewExecutor(alwaysTransient{}, fastBackoff(5))

	calls := 0
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("still locked")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("operation called %d times, want 3", calls)
	}
}

func TestExecutor_FatalErrorStopsRetries(t *testing.T) {
	exec := NewExecutor(neverTransient{}, fastBackoff(5))

	calls := 0
	fatal := errors.New("invalid name")
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	})

	if !errors.Is(err, fatal) {
		t.Fatalf("Execute error = %v, want %v", err, fatal)
	}
	if calls != 1 {
		t.Errorf("operation called %d times, want 1", calls)
	}
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	exec := NewExecutor(alwaysTransient{}, fastBackoff(2))

	calls := 0
	transient := errors.New("busy")
	err := exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return transient
	})

	if !errors.Is(err, transient) {
		t.Fatalf("Execute error = %v, want %v", err, transient)
	}
	// 1 initial attempt + 2 retries
	if calls != 3 {
		t.Errorf("operation called %d times, want 3", calls)
	}
}

func TestExecutor_ContextDeadlineEndsUnlimitedRetries(t *testing.T) {
	exec := NewExecutor(alwaysTransient{}, fastBackoff(-1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := exec.Execute(ctx, func(ctx context.Context) error {
		return errors.New("still locked")
	})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Execute error = %v, want context.DeadlineExceeded", err)
	}
}

func TestExecutor_OnRetryCallback(t *testing.T) {
	base := NewExecutor(alwaysTransient{}, fastBackoff(3))

	var attempts []int
	exec := base.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		attempts = append(attempts, attempt)
	})

	calls := 0
	_ = exec.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("busy")
		}
		return nil
	})

	if len(attempts) != 2 {
		t.Fatalf("onRetry called %d times, want 2", len(attempts))
	}
	if attempts[0] != 0 || attempts[1] != 1 {
		t.Errorf("onRetry attempts = %v, want [0 1]", attempts)
	}
}
