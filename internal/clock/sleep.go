// Package clock holds the time helpers shared by provider pacing and retries.
package clock

import (
	"context"
	"math/rand/v2"
	"time"
)

// Sleep pauses for d or until ctx is done. A non-positive d only reports ctx state.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Jitter draws a random pause in [0, limit). draw defaults to rand.Int64N.
func Jitter(limit time.Duration, draw func(int64) int64) time.Duration {
	if limit <= 0 {
		return 0
	}
	if draw == nil {
		draw = rand.Int64N
	}
	return time.Duration(draw(int64(limit)))
}
