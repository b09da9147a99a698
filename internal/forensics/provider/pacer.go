package provider

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/clock"
	"go.uber.org/ratelimit"
)

// Pacer spaces out outgoing provider calls for every caller sharing it.
type Pacer struct {
	limiter  ratelimit.Limiter
	maxDelay time.Duration
	sleep    func(context.Context, time.Duration) error
	int64N   func(int64) int64
}

// NewPacer allows rps calls per second (unlimited when rps <= 0) and adds a
// random pause in [0, maxDelay) before each call.
func NewPacer(rps int, maxDelay time.Duration) *Pacer {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Pacer{
		limiter:  limiter,
		maxDelay: maxDelay,
		sleep:    clock.Sleep,
		int64N:   rand.Int64N,
	}
}

// Wait blocks until the next call may be issued.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil {
		return ctx.Err()
	}
	p.limiter.Take()
	return p.sleep(ctx, clock.Jitter(p.maxDelay, p.int64N))
}
