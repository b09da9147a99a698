package tracer

import (
	"context"
	"slices"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"go.uber.org/zap"
)

// TraceOrigin walks backwards from address: each level collects the inputs of
// transactions that paid into an address known at a previous level. A cached
// result for the address is returned as is, whatever depth it was built with.
func (t *Tracer) TraceOrigin(ctx context.Context, address string, maxDepth int) (_ model.TraceResult, err error) {
	start := time.Now()
	defer func() {
		t.metrics.Observe("trace_origin", err, start)
	}()

	if err = validateDepth(maxDepth); err != nil {
		return model.TraceResult{}, err
	}
	if err = model.ValidateAddress(address, t.params); err != nil {
		return model.TraceResult{}, err
	}

	key := model.TraceKey{Seed: address, Direction: model.DirectionOrigin}
	cached, ok, err := t.cached(ctx, key)
	if err != nil {
		return model.TraceResult{}, err
	}
	if ok {
		return cached, nil
	}

	connections, err := t.walkOrigin(ctx, address, maxDepth)
	if err != nil {
		return model.TraceResult{}, err
	}

	res := model.TraceResult{
		Direction:   model.DirectionOrigin,
		Seed:        address,
		MaxDepth:    maxDepth,
		Connections: connections,
		Total:       len(connections),
		CreatedAt:   t.now(),
	}
	t.logger.Debug("origin traced", zap.String("seed", address), zap.Int("connections", res.Total))

	res, err = t.persist(ctx, res)
	return res, err
}

func (t *Tracer) walkOrigin(ctx context.Context, seed string, maxDepth int) ([]model.Connection, error) {
	valid := map[string]struct{}{seed: {}}
	visitedTx := make(map[string]struct{})
	seenEdge := make(map[edgeKey]struct{})
	connections := []model.Connection{}

	frontier := []string{seed}
	for level := 1; level <= maxDepth && len(frontier) > 0; level++ {
		byAddress, err := t.frontierTransactions(ctx, frontier)
		if err != nil {
			return nil, err
		}

		var next []string
		discovered := make(map[string]struct{})
		for _, address := range frontier {
			for _, tx := range byAddress[address] {
				if _, done := visitedTx[tx.Hash]; done {
					continue
				}
				to := firstIn(tx.Outputs, valid)
				if to == "" {
					continue
				}
				visitedTx[tx.Hash] = struct{}{}
				if tx.HasInput(seed) {
					continue
				}

				for _, from := range tx.Inputs {
					if from == to {
						continue
					}
					if _, known := valid[from]; known {
						continue
					}
					edge := edgeKey{hash: tx.Hash, from: from, to: to}
					if _, dup := seenEdge[edge]; dup {
						continue
					}
					seenEdge[edge] = struct{}{}
					connections = append(connections, connection(level, from, to, tx))

					if _, ok := discovered[from]; !ok {
						discovered[from] = struct{}{}
						next = append(next, from)
					}
				}
			}
		}

		for _, address := range next {
			valid[address] = struct{}{}
		}
		slices.Sort(next)
		frontier = next
	}
	return connections, nil
}

func firstIn(addresses []string, set map[string]struct{}) string {
	for _, a := range addresses {
		if _, ok := set[a]; ok {
			return a
		}
	}
	return ""
}

func connection(level int, from, to string, tx model.Transaction) model.Connection {
	return model.Connection{
		Level:     level,
		From:      from,
		To:        to,
		Amount:    tx.Total,
		TxHash:    tx.Hash,
		State:     tx.State,
		Timestamp: tx.Timestamp,
	}
}
