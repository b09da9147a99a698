package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/google/uuid"
)

const addressColumns = `
	id,
	address,
	balance,
	unconfirmed_balance,
	final_balance,
	total_received,
	total_sent,
	tx_count,
	unconfirmed_tx_count,
	final_tx_count,
	first_seen,
	last_seen,
	block_heights,
	updated_at`

// GetAddress returns the cached state of an address or model.ErrNotFound.
func (r *Repository) GetAddress(ctx context.Context, address string) (_ model.Address, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_address", err, start)
	}()

	query := `
SELECT` + addressColumns + `
FROM graph_addresses FINAL
WHERE address = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, address)
	if err != nil {
		return model.Address{}, fmt.Errorf("query address: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Address{}, fmt.Errorf("iterate address: %w", err)
		}
		return model.Address{}, fmt.Errorf("address %s: %w", address, model.ErrNotFound)
	}

	var (
		a                                           model.Address
		balance, unconfirmed, final, received, sent int64
		firstSeen, lastSeen, updatedAt              time.Time
	)
	if err = rows.Scan(
		&a.ID,
		&a.Address,
		&balance,
		&unconfirmed,
		&final,
		&received,
		&sent,
		&a.TxCount,
		&a.UnconfirmedTxCount,
		&a.FinalTxCount,
		&firstSeen,
		&lastSeen,
		&a.BlockHeights,
		&updatedAt,
	); err != nil {
		return model.Address{}, fmt.Errorf("scan address: %w", err)
	}

	a.Balance = btcutil.Amount(balance)
	a.UnconfirmedBalance = btcutil.Amount(unconfirmed)
	a.FinalBalance = btcutil.Amount(final)
	a.TotalReceived = btcutil.Amount(received)
	a.TotalSent = btcutil.Amount(sent)
	a.FirstSeen = fromColumnTime(firstSeen)
	a.LastSeen = fromColumnTime(lastSeen)
	a.UpdatedAt = fromColumnTime(updatedAt)

	return a, nil
}

// UpsertAddress writes the address state, keeping the surrogate ID of an
// already stored row. The stored version is returned.
func (r *Repository) UpsertAddress(ctx context.Context, a model.Address) (_ model.Address, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_address", err, start)
	}()

	ids, err := r.existingIDs(ctx, "graph_addresses", "address", []string{a.Address})
	if err != nil {
		return model.Address{}, err
	}
	if id, ok := ids[a.Address]; ok {
		a.ID = id
	} else if a.ID == uuid.Nil {
		a.ID = r.newID()
	}
	a.UpdatedAt = r.now()

	const query = `
INSERT INTO graph_addresses (` + addressColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return model.Address{}, fmt.Errorf("prepare addresses batch: %w", err)
	}

	if err = batch.Append(
		a.ID,
		a.Address,
		int64(a.Balance),
		int64(a.UnconfirmedBalance),
		int64(a.FinalBalance),
		int64(a.TotalReceived),
		int64(a.TotalSent),
		a.TxCount,
		a.UnconfirmedTxCount,
		a.FinalTxCount,
		toColumnTime(a.FirstSeen),
		toColumnTime(a.LastSeen),
		nonNilHeights(a.BlockHeights),
		a.UpdatedAt,
	); err != nil {
		_ = batch.Abort()
		return model.Address{}, fmt.Errorf("append address: %w", err)
	}

	if err = batch.Send(); err != nil {
		return model.Address{}, fmt.Errorf("insert address: %w", err)
	}
	return a, nil
}

// ListAddresses returns every known address in lexical order.
func (r *Repository) ListAddresses(ctx context.Context) (out []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_addresses", err, start)
	}()

	const query = `
SELECT address
FROM graph_addresses FINAL
ORDER BY address`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query addresses: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var address string
		if err = rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, address)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}
	return out, nil
}

// existingIDs maps natural keys already present in table to their surrogate IDs.
func (r *Repository) existingIDs(ctx context.Context, table, keyColumn string, keys []string) (ids map[string]uuid.UUID, err error) {
	ids = make(map[string]uuid.UUID, len(keys))
	if len(keys) == 0 {
		return ids, nil
	}

	query := fmt.Sprintf(`
SELECT %[2]s, id
FROM %[1]s FINAL
WHERE %[2]s IN (?)`, table, keyColumn)

	rows, err := r.conn.Query(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("query %s ids: %w", table, err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			key string
			id  uuid.UUID
		)
		if err = rows.Scan(&key, &id); err != nil {
			return nil, fmt.Errorf("scan %s id: %w", table, err)
		}
		ids[key] = id
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s ids: %w", table, err)
	}
	return ids, nil
}

func nonNilHeights(heights []uint64) []uint64 {
	if heights == nil {
		return []uint64{}
	}
	return heights
}
