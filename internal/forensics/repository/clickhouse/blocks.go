package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/google/uuid"
)

const blockColumns = `
	id,
	hash,
	height,
	timestamp,
	fees,
	volume,
	updated_at`

// GetBlock returns a stored block or model.ErrNotFound.
func (r *Repository) GetBlock(ctx context.Context, hash string) (_ model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_block", err, start)
	}()

	query := `
SELECT` + blockColumns + `
FROM graph_blocks FINAL
WHERE hash = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return model.Block{}, fmt.Errorf("query block: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Block{}, fmt.Errorf("iterate block: %w", err)
		}
		return model.Block{}, fmt.Errorf("block %s: %w", hash, model.ErrNotFound)
	}

	var (
		b                    model.Block
		fees, volume         int64
		timestamp, updatedAt time.Time
	)
	if err = rows.Scan(&b.ID, &b.Hash, &b.Height, &timestamp, &fees, &volume, &updatedAt); err != nil {
		return model.Block{}, fmt.Errorf("scan block: %w", err)
	}
	b.Timestamp = fromColumnTime(timestamp)
	b.Fees = btcutil.Amount(fees)
	b.Volume = btcutil.Amount(volume)

	return b, nil
}

// UpsertBlock stores b unless a block with the same hash exists already, and
// returns the stored version.
func (r *Repository) UpsertBlock(ctx context.Context, b model.Block) (model.Block, error) {
	stored, err := r.GetBlock(ctx, b.Hash)
	if err == nil {
		return stored, nil
	}
	if !IsNotFound(err) {
		return model.Block{}, err
	}

	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_block", err, start)
	}()

	if b.ID == uuid.Nil {
		b.ID = r.newID()
	}

	const query = `
INSERT INTO graph_blocks (` + blockColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return model.Block{}, fmt.Errorf("prepare blocks batch: %w", err)
	}
	if err = batch.Append(
		b.ID,
		b.Hash,
		b.Height,
		toColumnTime(b.Timestamp),
		int64(b.Fees),
		int64(b.Volume),
		r.now(),
	); err != nil {
		_ = batch.Abort()
		return model.Block{}, fmt.Errorf("append block: %w", err)
	}
	if err = batch.Send(); err != nil {
		return model.Block{}, fmt.Errorf("insert block: %w", err)
	}
	return b, nil
}
