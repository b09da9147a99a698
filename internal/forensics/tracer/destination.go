package tracer

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"go.uber.org/zap"
)

// TraceDestination walks forward from address, following the outputs of
// transactions funded by the current frontier.
func (t *Tracer) TraceDestination(ctx context.Context, address string, opts DestinationOptions) (_ model.TraceResult, err error) {
	start := time.Now()
	defer func() {
		t.metrics.Observe("trace_destination", err, start)
	}()

	if opts.MaxDepth == 0 {
		opts.MaxDepth = 1
	}
	if err = validateDepth(opts.MaxDepth); err != nil {
		return model.TraceResult{}, err
	}
	if opts.WindowDays < 0 {
		return model.TraceResult{}, &model.ValidationError{Entity: "window", Key: strconv.Itoa(opts.WindowDays), Err: fmt.Errorf("must not be negative")}
	}
	if err = model.ValidateAddress(address, t.params); err != nil {
		return model.TraceResult{}, err
	}

	key := model.TraceKey{
		Seed:       address,
		Direction:  model.DirectionDestination,
		WindowDays: opts.WindowDays,
		MaxDepth:   opts.MaxDepth,
	}
	cached, ok, err := t.cached(ctx, key)
	if err != nil {
		return model.TraceResult{}, err
	}
	if ok {
		return cached, nil
	}

	now := t.now()
	var since time.Time
	if opts.WindowDays > 0 {
		since = now.AddDate(0, 0, -opts.WindowDays)
	}

	connections, err := t.walkDestination(ctx, address, opts.MaxDepth, since)
	if err != nil {
		return model.TraceResult{}, err
	}

	res := model.TraceResult{
		Direction:   model.DirectionDestination,
		Seed:        address,
		WindowDays:  opts.WindowDays,
		MaxDepth:    opts.MaxDepth,
		Connections: connections,
		Total:       len(connections),
		CreatedAt:   now,
	}
	t.logger.Debug("destination traced", zap.String("seed", address), zap.Int("connections", res.Total))

	res, err = t.persist(ctx, res)
	return res, err
}

func (t *Tracer) walkDestination(ctx context.Context, seed string, maxDepth int, since time.Time) ([]model.Connection, error) {
	visited := map[string]struct{}{seed: {}}
	seenEdge := make(map[edgeKey]struct{})
	connections := []model.Connection{}

	frontier := []string{seed}
	for level := 1; level <= maxDepth && len(frontier) > 0; level++ {
		byAddress, err := t.frontierTransactions(ctx, frontier)
		if err != nil {
			return nil, err
		}

		inFrontier := make(map[string]struct{}, len(frontier))
		for _, address := range frontier {
			inFrontier[address] = struct{}{}
		}

		var next []string
		for _, address := range frontier {
			for _, tx := range byAddress[address] {
				if !since.IsZero() && tx.Timestamp.Before(since) {
					continue
				}
				if firstIn(tx.Inputs, inFrontier) != address {
					continue
				}

				for _, to := range tx.Outputs {
					if to == address || to == seed {
						continue
					}
					edge := edgeKey{hash: tx.Hash, to: to}
					if _, dup := seenEdge[edge]; dup {
						continue
					}
					seenEdge[edge] = struct{}{}
					connections = append(connections, connection(level, address, to, tx))

					if _, ok := visited[to]; !ok {
						visited[to] = struct{}{}
						next = append(next, to)
					}
				}
			}
		}

		slices.Sort(next)
		frontier = next
	}
	return connections, nil
}
