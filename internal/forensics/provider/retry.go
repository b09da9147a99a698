package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/clock"
)

// Class tells the retry loop how to react to a failed attempt.
type Class int

const (
	ClassTransient Class = iota
	ClassExtended
	ClassFatal
)

func (c Class) String() string {
	switch c {
	case ClassTransient:
		return "transient"
	case ClassExtended:
		return "extended"
	default:
		return "fatal"
	}
}

// Policy is a bounded retry policy with exponential backoff and jitter.
type Policy struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	ExtendedDelay time.Duration
	Jitter        time.Duration

	Classify func(error) Class
	OnRetry  func(attempt int, class Class, wait time.Duration, err error)
	Sleep    func(context.Context, time.Duration) error
	Int64N   func(int64) int64
}

// DefaultPolicy is three attempts, 1s doubling to 30s, 20s extra on rate limits and challenges.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:   3,
		BaseDelay:     time.Second,
		MaxDelay:      30 * time.Second,
		ExtendedDelay: 20 * time.Second,
		Jitter:        500 * time.Millisecond,
	}
}

// Classify maps an attempt error onto the retry taxonomy.
func Classify(err error) Class {
	var apiErr *APIError
	switch {
	case errors.Is(err, ErrRateLimited), errors.Is(err, ErrChallengeDetected):
		return ClassExtended
	case errors.Is(err, ErrUnconfigured), errors.As(err, &apiErr):
		return ClassFatal
	default:
		return ClassTransient
	}
}

// Wait returns the pause before the attempt that follows attempt.
func (p Policy) Wait(attempt int, class Class) time.Duration {
	wait := clock.Backoff(p.BaseDelay, p.MaxDelay, attempt)
	if class == ClassExtended {
		wait += p.ExtendedDelay
	}
	return wait + clock.Jitter(p.Jitter, p.Int64N)
}

// Do runs fn until it succeeds, fails fatally, or MaxAttempts is reached.
// Exhaustion is reported as ErrUnavailable wrapping the last attempt error.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	classify := p.Classify
	if classify == nil {
		classify = Classify
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = clock.Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx, attempt)
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("attempt %d: %w", attempt, ctxErr)
		}
		lastErr = err

		class := classify(err)
		if class == ClassFatal {
			return err
		}
		if attempt == attempts {
			break
		}

		wait := p.Wait(attempt, class)
		if p.OnRetry != nil {
			p.OnRetry(attempt, class, wait, err)
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrUnavailable, attempts, lastErr)
}
