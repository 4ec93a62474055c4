// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return WaitForSignal(ctx, d, nil)
}

// WaitForSignal waits until the duration elapses or a value arrives on signal,
// whichever happens first. A nil signal channel only waits for the timer.
// It returns the context error if ctx is canceled first.
func WaitForSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	}
}
