package simulator

import (
	"context"
	"time"
)

// DefaultThinkingTime is the artificial "AI thinking" pause used in production.
const DefaultThinkingTime = 700 * time.Millisecond

// Delayer suspends a finished run before its response is released.
type Delayer interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits for a constant duration, or until ctx is done.
type FixedDelay time.Duration

func (d FixedDelay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoDelay returns immediately.
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context) error { return nil }

// DelayFor returns NoDelay for non-positive durations and a FixedDelay otherwise.
func DelayFor(d time.Duration) Delayer {
	if d <= 0 {
		return NoDelay{}
	}
	return FixedDelay(d)
}
