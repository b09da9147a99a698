// Package batcher groups queued items into bulk writes flushed by size or age.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

const (
	DefaultSize     = 100
	DefaultInterval = time.Second
	DefaultRPS      = 10
)

// FlushFunc writes one batch. The slice is reused after it returns.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Config bounds batch size, batch age and flush rate.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

type Batcher[T any] struct {
	flush   FlushFunc[T]
	items   chan T
	cfg     Config
	limiter ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	stop     chan struct{}
}

func New[T any](cfg Config, flush FlushFunc[T], logger *zap.Logger) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.RPS <= 0 {
		cfg.RPS = DefaultRPS
	}
	return &Batcher[T]{
		flush:   flush,
		items:   make(chan T, cfg.Size*2),
		cfg:     cfg,
		limiter: ratelimit.New(cfg.RPS),
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Start runs the flushing loop until ctx is done or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes whatever is queued and waits for the loop to exit.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}
	drain := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
				if len(buf) >= b.cfg.Size {
					flush(final)
				}
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.stop:
			drain()
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
