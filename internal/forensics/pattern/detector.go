// Package pattern tags transactions whose shape suggests laundering.
package pattern

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"go.uber.org/zap"
)

// Rules holds the thresholds of every pattern. A rule fires when the counts
// are strictly above and the amounts strictly beyond the given values.
type Rules struct {
	SmurfingMinInputs int
	SmurfingMaxTotal  btcutil.Amount
	LayeringMinTotal  btcutil.Amount
	LayeringMinOuts   int
	MixerMinInputs    int
	MixerMinOutputs   int
}

func DefaultRules() Rules {
	return Rules{
		SmurfingMinInputs: 5,
		SmurfingMaxTotal:  btcutil.SatoshiPerBitcoin,
		LayeringMinTotal:  10 * btcutil.SatoshiPerBitcoin,
		LayeringMinOuts:   3,
		MixerMinInputs:    10,
		MixerMinOutputs:   10,
	}
}

// Detect returns every matching pattern in the order smurfing, layering,
// mixer, or nil when the transaction looks ordinary.
func (r Rules) Detect(tx model.Transaction) []model.Pattern {
	var found []model.Pattern
	if len(tx.Inputs) > r.SmurfingMinInputs && tx.Total < r.SmurfingMaxTotal {
		found = append(found, model.PatternSmurfing)
	}
	if tx.Total > r.LayeringMinTotal && len(tx.Outputs) > r.LayeringMinOuts {
		found = append(found, model.PatternLayering)
	}
	if len(tx.Inputs) > r.MixerMinInputs && len(tx.Outputs) > r.MixerMinOutputs {
		found = append(found, model.PatternMixer)
	}
	return found
}

// Tag is one detected transaction of a scan. New is false when the
// transaction already carried its tags.
type Tag struct {
	Hash     string          `json:"hash"`
	Patterns []model.Pattern `json:"patterns"`
	New      bool            `json:"new"`
}

type Result struct {
	Address string `json:"address"`
	Scanned int    `json:"scanned"`
	Tags    []Tag  `json:"tags"`
}

type Detector struct {
	gateway Gateway
	store   Store
	metrics Metrics
	rules   Rules
	limit   int
	logger  *zap.Logger
}

func NewDetector(gateway Gateway, store Store, metrics Metrics, rules Rules, limit int, logger *zap.Logger) *Detector {
	return &Detector{
		gateway: gateway,
		store:   store,
		metrics: metrics,
		rules:   rules,
		limit:   limit,
		logger:  logger.Named("pattern"),
	}
}

// TagAddress scans the transactions of address and tags each suspicious one.
// Tags are written once; existing tags are never replaced.
func (d *Detector) TagAddress(ctx context.Context, address string) (_ Result, err error) {
	start := time.Now()
	defer func() {
		d.metrics.Observe("tag_address", err, start)
	}()

	txs, err := d.gateway.FetchTransactionsForAddress(ctx, address, d.limit, false)
	if err != nil {
		return Result{}, fmt.Errorf("load transactions: %w", err)
	}

	res := Result{Address: address, Scanned: len(txs), Tags: []Tag{}}
	for _, tx := range txs {
		if tx.Tagged() {
			res.Tags = append(res.Tags, Tag{Hash: tx.Hash, Patterns: tx.Patterns})
			continue
		}
		found := d.rules.Detect(tx)
		if len(found) == 0 {
			continue
		}

		var tagged bool
		tagged, err = d.store.SetTransactionPatterns(ctx, tx.Hash, found)
		if errors.Is(err, model.ErrNotFound) {
			d.logger.Warn("transaction vanished before tagging", zap.String("hash", tx.Hash))
			continue
		}
		if err != nil {
			return Result{}, fmt.Errorf("tag transaction %s: %w", tx.Hash, err)
		}
		res.Tags = append(res.Tags, Tag{Hash: tx.Hash, Patterns: found, New: tagged})
	}

	d.logger.Debug("address scanned for patterns",
		zap.String("address", address),
		zap.Int("scanned", res.Scanned),
		zap.Int("tagged", len(res.Tags)),
	)
	return res, nil
}
