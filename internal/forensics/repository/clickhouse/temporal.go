package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/pkg/safe"
	"github.com/google/uuid"
)

// InsertTemporalCorrelation appends a correlation snapshot.
func (r *Repository) InsertTemporalCorrelation(ctx context.Context, c model.TemporalCorrelation) (_ model.TemporalCorrelation, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_temporal_correlation", err, start)
	}()

	if c.ID == uuid.Nil {
		c.ID = r.newID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now()
	}

	series, err := json.Marshal(c.Series)
	if err != nil {
		return model.TemporalCorrelation{}, fmt.Errorf("encode series: %w", err)
	}
	pairs, err := json.Marshal(c.Pairs)
	if err != nil {
		return model.TemporalCorrelation{}, fmt.Errorf("encode pairs: %w", err)
	}

	total, err := safe.Uint64(c.TotalTransactions)
	if err != nil {
		return model.TemporalCorrelation{}, fmt.Errorf("convert total transactions: %w", err)
	}

	const query = `
INSERT INTO temporal_correlations (
	id,
	addresses,
	time_window,
	series,
	pairs,
	total_transactions,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return model.TemporalCorrelation{}, fmt.Errorf("prepare temporal correlations batch: %w", err)
	}
	if err = batch.Append(
		c.ID,
		nonNilStrings(c.Addresses),
		c.Window,
		string(series),
		string(pairs),
		total,
		c.CreatedAt,
	); err != nil {
		_ = batch.Abort()
		return model.TemporalCorrelation{}, fmt.Errorf("append temporal correlation: %w", err)
	}
	if err = batch.Send(); err != nil {
		return model.TemporalCorrelation{}, fmt.Errorf("insert temporal correlation: %w", err)
	}
	return c, nil
}
