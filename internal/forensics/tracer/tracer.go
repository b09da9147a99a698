// Package tracer follows funds through the transaction graph, one level at a
// time, towards their origin or their destination.
package tracer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	MinDepth           = 1
	MaxDepth           = 10
	// DefaultOriginDepth is the origin trace depth used when none is asked for.
	DefaultOriginDepth = 3
	DefaultConcurrency = 4
)

type Config struct {
	Params *chaincfg.Params
	// Concurrency bounds the frontier addresses fetched at once.
	Concurrency int
	// Limit is the transaction page requested per frontier address; 0 uses the gateway default.
	Limit int
}

type Tracer struct {
	gateway     Gateway
	store       Store
	metrics     Metrics
	params      *chaincfg.Params
	concurrency int
	limit       int
	logger      *zap.Logger
	now         func() time.Time
}

func New(gateway Gateway, store Store, metrics Metrics, cfg Config, logger *zap.Logger) *Tracer {
	if cfg.Params == nil {
		cfg.Params = &chaincfg.MainNetParams
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Tracer{
		gateway:     gateway,
		store:       store,
		metrics:     metrics,
		params:      cfg.Params,
		concurrency: cfg.Concurrency,
		limit:       cfg.Limit,
		logger:      logger.Named("tracer"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// DestinationOptions narrows a destination trace.
type DestinationOptions struct {
	// WindowDays limits the trace to transactions of the last N days; 0 means the whole history.
	WindowDays int
	// MaxDepth is the number of hops to follow; 0 means a single hop.
	MaxDepth int
}

func validateDepth(depth int) error {
	if depth < MinDepth || depth > MaxDepth {
		return &model.ValidationError{
			Entity: "depth",
			Key:    strconv.Itoa(depth),
			Err:    fmt.Errorf("must be between %d and %d", MinDepth, MaxDepth),
		}
	}
	return nil
}

// cached returns a stored result for key. A corrupt cache entry counts as a miss.
func (t *Tracer) cached(ctx context.Context, key model.TraceKey) (model.TraceResult, bool, error) {
	res, err := t.store.TraceResult(ctx, key)
	switch {
	case err == nil:
		return res, true, nil
	case errors.Is(err, model.ErrNotFound):
		return model.TraceResult{}, false, nil
	case model.IsValidation(err):
		t.logger.Warn("ignoring unreadable cached trace", zap.String("seed", key.Seed), zap.Error(err))
		return model.TraceResult{}, false, nil
	default:
		return model.TraceResult{}, false, fmt.Errorf("load cached trace: %w", err)
	}
}

func (t *Tracer) persist(ctx context.Context, res model.TraceResult) (model.TraceResult, error) {
	if len(res.Connections) == 0 {
		return res, nil
	}
	stored, err := t.store.InsertTraceResult(ctx, res)
	if err != nil {
		return model.TraceResult{}, fmt.Errorf("store trace: %w", err)
	}
	return stored, nil
}

// frontierTransactions fetches the transactions of every frontier address.
// Addresses the gateway cannot serve contribute nothing.
func (t *Tracer) frontierTransactions(ctx context.Context, frontier []string) (map[string][]model.Transaction, error) {
	results, err := workerpool.Collect(ctx, t.concurrency, frontier,
		func(ctx context.Context, address string) ([]model.Transaction, error) {
			return t.gateway.LatestTransactions(ctx, address, t.limit)
		},
		func(address string, err error) {
			t.logger.Warn("frontier address skipped", zap.String("address", address), zap.Error(err))
		},
	)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]model.Transaction, len(frontier))
	results.Range(func(address string, txs []model.Transaction) bool {
		sorted := slices.Clone(txs)
		model.SortTransactions(sorted)
		out[address] = sorted
		return true
	})
	return out, nil
}

type edgeKey struct {
	hash, from, to string
}
