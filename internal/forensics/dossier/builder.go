// Package dossier assembles everything known about one address.
package dossier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/reports"
	"github.com/goodnatureofminers/blockinsight7000-forensics/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	MaxTransactions    = 200
	DefaultConcurrency = 4
)

// Entry is a transaction with the block that confirmed it, if known.
type Entry struct {
	Transaction model.Transaction
	Block       *model.Block
}

type Dossier struct {
	Address      model.Address
	Risk         *model.RiskProfile
	Reports      reports.Summary
	Transactions []Entry
	BuiltAt      time.Time
}

type Builder struct {
	gateway     Gateway
	reports     Reports
	store       Store
	concurrency int
	logger      *zap.Logger
	now         func() time.Time
}

func NewBuilder(gateway Gateway, reports Reports, store Store, concurrency int, logger *zap.Logger) *Builder {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Builder{
		gateway:     gateway,
		reports:     reports,
		store:       store,
		concurrency: concurrency,
		logger:      logger.Named("dossier"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Build collects the address state, its risk profile, a summary of its
// reports and its latest transactions with their blocks. Blocks that cannot
// be fetched are left empty.
func (b *Builder) Build(ctx context.Context, address string) (Dossier, error) {
	a, err := b.gateway.FetchAddress(ctx, address, false)
	if err != nil {
		return Dossier{}, fmt.Errorf("load address: %w", err)
	}

	d := Dossier{Address: a, BuiltAt: b.now()}

	profile, err := b.store.GetRiskProfile(ctx, address)
	switch {
	case err == nil:
		d.Risk = &profile
	case errors.Is(err, model.ErrNotFound):
	case model.IsValidation(err):
		b.logger.Warn("unreadable risk profile", zap.String("address", address), zap.Error(err))
	default:
		return Dossier{}, fmt.Errorf("load risk profile: %w", err)
	}

	stored, err := b.reports.ReportsForAddress(ctx, address, false)
	if err != nil {
		return Dossier{}, fmt.Errorf("load reports: %w", err)
	}
	d.Reports = reports.Summarize(stored)

	txs, err := b.gateway.FetchTransactionsForAddress(ctx, address, MaxTransactions, false)
	if err != nil {
		return Dossier{}, fmt.Errorf("load transactions: %w", err)
	}
	blocks, err := b.blocks(ctx, txs)
	if err != nil {
		return Dossier{}, err
	}

	d.Transactions = make([]Entry, 0, len(txs))
	for _, tx := range txs {
		e := Entry{Transaction: tx}
		if blk, ok := blocks[tx.BlockHash]; ok {
			e.Block = &blk
		}
		d.Transactions = append(d.Transactions, e)
	}
	return d, nil
}

func (b *Builder) blocks(ctx context.Context, txs []model.Transaction) (map[string]model.Block, error) {
	seen := make(map[string]struct{}, len(txs))
	hashes := make([]string, 0, len(txs))
	for _, tx := range txs {
		if _, ok := seen[tx.BlockHash]; ok || tx.BlockHash == "" {
			continue
		}
		seen[tx.BlockHash] = struct{}{}
		hashes = append(hashes, tx.BlockHash)
	}

	fetched, err := workerpool.Collect(ctx, b.concurrency, hashes,
		func(ctx context.Context, hash string) (model.Block, error) {
			return b.gateway.FetchBlock(ctx, hash, false)
		},
		func(hash string, err error) {
			b.logger.Debug("block left empty", zap.String("hash", hash), zap.Error(err))
		},
	)
	if err != nil {
		return nil, err
	}

	out := make(map[string]model.Block, fetched.Size())
	fetched.Range(func(hash string, blk model.Block) bool {
		out[hash] = blk
		return true
	})
	return out, nil
}
