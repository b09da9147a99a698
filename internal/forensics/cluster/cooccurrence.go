package cluster

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"go.uber.org/zap"
)

// CoOccurrenceOptions bounds a co-occurrence expansion.
type CoOccurrenceOptions struct {
	MaxHops    int
	MaxMembers int
}

// DetectByCoOccurrence unions every address appearing next to the seed in a
// transaction, following new members for up to MaxHops rounds. The seed comes
// first and the others follow in discovery order. Each call stores a new snapshot.
func (d *Detector) DetectByCoOccurrence(ctx context.Context, address string, opts CoOccurrenceOptions) (_ model.Cluster, err error) {
	start := time.Now()
	defer func() {
		d.metrics.Observe("detect_by_co_occurrence", err, start)
	}()

	if opts.MaxHops == 0 {
		opts.MaxHops = DefaultMaxHops
	}
	if opts.MaxMembers == 0 {
		opts.MaxMembers = DefaultMaxMembers
	}
	if opts.MaxHops < 0 || opts.MaxMembers < 1 {
		return model.Cluster{}, &model.ValidationError{
			Entity: "co-occurrence options",
			Key:    strconv.Itoa(opts.MaxHops) + "/" + strconv.Itoa(opts.MaxMembers),
			Err:    errors.New("hops and members must be positive"),
		}
	}
	if err = model.ValidateAddress(address, d.params); err != nil {
		return model.Cluster{}, err
	}

	members, err := d.expand(ctx, address, opts)
	if err != nil {
		return model.Cluster{}, err
	}

	c := model.Cluster{
		BaseAddress: address,
		Members:     members,
		Algorithm:   model.ClusterByCoOccurrence,
		RiskType:    d.riskType(ctx, members),
		Description: fmt.Sprintf("Cluster por co-ocurrencia: %d direcciones", len(members)),
		CreatedAt:   d.now(),
	}

	label, labelErr := d.DetectByLabel(ctx, address)
	switch {
	case labelErr == nil:
		c.Label = label.Label
		c.WalletID = label.WalletID
		c.UpdatedToBlock = label.UpdatedToBlock
		if c.RiskType == "" {
			c.RiskType = label.RiskType
		}
	case ctx.Err() != nil:
		return model.Cluster{}, ctx.Err()
	default:
		d.logger.Debug("co-occurrence cluster without label", zap.String("address", address), zap.Error(labelErr))
	}

	c, err = d.store.InsertCluster(ctx, c)
	if err != nil {
		return model.Cluster{}, fmt.Errorf("store cluster: %w", err)
	}
	return c, nil
}

func (d *Detector) expand(ctx context.Context, seed string, opts CoOccurrenceOptions) ([]string, error) {
	members := []string{seed}
	inCluster := map[string]struct{}{seed: {}}
	visitedTx := make(map[string]struct{})

	frontier := []string{seed}
	for hop := 1; hop <= opts.MaxHops && len(frontier) > 0; hop++ {
		var next []string
		for _, address := range frontier {
			txs, err := d.transactions(ctx, address, address == seed)
			if err != nil {
				return nil, err
			}
			for _, tx := range txs {
				if _, done := visitedTx[tx.Hash]; done {
					continue
				}
				visitedTx[tx.Hash] = struct{}{}

				for _, other := range append(append([]string(nil), tx.Inputs...), tx.Outputs...) {
					if _, ok := inCluster[other]; ok || other == "" {
						continue
					}
					if len(members) >= opts.MaxMembers {
						return members, nil
					}
					inCluster[other] = struct{}{}
					members = append(members, other)
					next = append(next, other)
				}
			}
		}
		frontier = next
	}
	return members, nil
}

// transactions reads stored transactions of address. For the seed an empty
// store triggers one gateway fetch; its failure only shrinks the result.
func (d *Detector) transactions(ctx context.Context, address string, isSeed bool) ([]model.Transaction, error) {
	txs, err := d.store.TransactionsByAddress(ctx, address, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	if len(txs) > 0 || !isSeed {
		return txs, nil
	}

	fetched, err := d.gateway.FetchTransactionsForAddress(ctx, address, 0, false)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		d.logger.Warn("seed transactions unavailable", zap.String("address", address), zap.Error(err))
		return nil, nil
	}
	model.SortTransactions(fetched)
	return fetched, nil
}
