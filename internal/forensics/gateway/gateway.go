// Package gateway serves chain data from the graph store and fills gaps from
// the external provider, writing whatever it learns back to the store.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"go.uber.org/zap"
)

// DefaultLimit is the transaction page size asked from the provider.
const DefaultLimit = 50

type Gateway struct {
	provider Provider
	store    Store
	params   *chaincfg.Params
	limit    int
	logger   *zap.Logger
}

func New(provider Provider, store Store, params *chaincfg.Params, limit int, logger *zap.Logger) *Gateway {
	if params == nil {
		params = &chaincfg.MainNetParams
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Gateway{
		provider: provider,
		store:    store,
		params:   params,
		limit:    limit,
		logger:   logger.Named("gateway"),
	}
}

// Params returns the network addresses are validated against.
func (g *Gateway) Params() *chaincfg.Params {
	return g.params
}

// FetchAddress returns the address state, from the store unless refresh is
// set or the address is unknown.
func (g *Gateway) FetchAddress(ctx context.Context, address string, refresh bool) (model.Address, error) {
	if err := model.ValidateAddress(address, g.params); err != nil {
		return model.Address{}, err
	}

	if !refresh {
		stored, err := g.store.GetAddress(ctx, address)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.Address{}, fmt.Errorf("load address: %w", err)
		}
	}

	a, _, err := g.sync(ctx, address, g.limit)
	if err != nil {
		return model.Address{}, err
	}
	return a, nil
}

// FetchTransactionsForAddress returns up to limit transactions of address,
// ordered by timestamp then hash.
func (g *Gateway) FetchTransactionsForAddress(ctx context.Context, address string, limit int, refresh bool) ([]model.Transaction, error) {
	if err := model.ValidateAddress(address, g.params); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = g.limit
	}

	if !refresh {
		stored, err := g.store.TransactionsByAddress(ctx, address, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("load transactions: %w", err)
		}
		if len(stored) > 0 {
			return newest(stored, limit), nil
		}
	}

	_, txs, err := g.sync(ctx, address, limit)
	if err != nil {
		return nil, err
	}
	return newest(txs, limit), nil
}

// LatestTransactions refreshes the transactions of address from the provider
// and falls back to the stored ones when the provider cannot answer.
func (g *Gateway) LatestTransactions(ctx context.Context, address string, limit int) ([]model.Transaction, error) {
	txs, err := g.FetchTransactionsForAddress(ctx, address, limit, true)
	if err == nil {
		return txs, nil
	}
	if model.IsValidation(err) || ctx.Err() != nil {
		return nil, err
	}

	g.logger.Warn("provider refresh failed, using stored transactions",
		zap.String("address", address),
		zap.Error(err),
	)
	stored, storeErr := g.store.TransactionsByAddress(ctx, address, time.Time{})
	if storeErr != nil {
		return nil, fmt.Errorf("load transactions: %w", errors.Join(err, storeErr))
	}
	return stored, nil
}

// FetchBlock returns block metadata, from the store unless refresh is set or
// the block is unknown.
func (g *Gateway) FetchBlock(ctx context.Context, hash string, refresh bool) (model.Block, error) {
	if err := model.ValidateHash(hash); err != nil {
		return model.Block{}, err
	}

	if !refresh {
		stored, err := g.store.GetBlock(ctx, hash)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.Block{}, fmt.Errorf("load block: %w", err)
		}
	}

	b, err := g.provider.Block(ctx, hash)
	if err != nil {
		return model.Block{}, fmt.Errorf("fetch block %s: %w", hash, err)
	}
	stored, err := g.store.UpsertBlock(ctx, b)
	if err != nil {
		return model.Block{}, fmt.Errorf("store block: %w", err)
	}
	return stored, nil
}

func (g *Gateway) sync(ctx context.Context, address string, limit int) (model.Address, []model.Transaction, error) {
	snapshot, err := g.provider.AddressSnapshot(ctx, address, limit)
	if err != nil {
		return model.Address{}, nil, fmt.Errorf("fetch address %s: %w", address, err)
	}

	stored, err := g.store.UpsertAddress(ctx, snapshot.Address)
	if err != nil {
		return model.Address{}, nil, fmt.Errorf("store address: %w", err)
	}
	txs, err := g.store.UpsertTransactions(ctx, snapshot.Transactions)
	if err != nil {
		return model.Address{}, nil, fmt.Errorf("store transactions: %w", err)
	}

	g.logger.Debug("address synced",
		zap.String("address", address),
		zap.Int("transactions", len(txs)),
	)
	return stored, txs, nil
}

// newest keeps the limit most recent transactions in chronological order.
func newest(txs []model.Transaction, limit int) []model.Transaction {
	out := append([]model.Transaction(nil), txs...)
	model.SortTransactions(out)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
