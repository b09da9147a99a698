package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/google/uuid"
)

const transactionColumns = `
	id,
	hash,
	timestamp,
	inputs,
	outputs,
	total,
	fee,
	state,
	block_hash,
	block_height,
	patterns,
	updated_at`

// UpsertTransactions merges txs into the store and returns the stored version
// of each, in input order. Stored inputs, outputs and pattern tags are kept, and a
// confirmed transaction is never rewritten.
func (r *Repository) UpsertTransactions(ctx context.Context, txs []model.Transaction) (_ []model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil, nil
	}

	hashes := make([]string, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, tx.Hash)
	}
	existing, err := r.transactionsByHashes(ctx, hashes)
	if err != nil {
		return nil, err
	}

	stored := make([]model.Transaction, 0, len(txs))
	pending := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if prev, ok := existing[tx.Hash]; ok {
			if prev.Confirmed() {
				stored = append(stored, prev)
				continue
			}
			tx = mergeTransaction(prev, tx)
		} else if tx.ID == uuid.Nil {
			tx.ID = r.newID()
		}
		existing[tx.Hash] = tx
		stored = append(stored, tx)
		pending = append(pending, tx)
	}

	if err = r.insertTransactions(ctx, pending); err != nil {
		return nil, err
	}
	return stored, nil
}

func mergeTransaction(prev, next model.Transaction) model.Transaction {
	next.ID = prev.ID
	if len(prev.Inputs) > 0 || len(prev.Outputs) > 0 {
		next.Inputs = prev.Inputs
		next.Outputs = prev.Outputs
	}
	if prev.Tagged() {
		next.Patterns = prev.Patterns
	}
	return next
}

// TransactionsByAddress returns the stored transactions involving address with
// a timestamp at or after since, ordered by timestamp then hash. A zero since
// returns the whole history. Rows that cannot be decoded are logged and left out.
func (r *Repository) TransactionsByAddress(ctx context.Context, address string, since time.Time) (out []model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_address", err, start)
	}()

	query := `
SELECT` + transactionColumns + `
FROM graph_transactions FINAL
WHERE (has(inputs, ?) OR has(outputs, ?)) AND timestamp >= ?
ORDER BY timestamp, hash`

	rows, err := r.conn.Query(ctx, query, address, address, toColumnTime(since))
	if err != nil {
		return nil, fmt.Errorf("query transactions by address: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			r.skipRow("transaction", address, scanErr)
			continue
		}
		out = append(out, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// SetTransactionPatterns tags a stored transaction once. It reports false when
// the transaction already carries tags.
func (r *Repository) SetTransactionPatterns(ctx context.Context, hash string, patterns []model.Pattern) (tagged bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("set_transaction_patterns", err, start)
	}()

	if len(patterns) == 0 {
		return false, nil
	}

	existing, err := r.transactionsByHashes(ctx, []string{hash})
	if err != nil {
		return false, err
	}
	tx, ok := existing[hash]
	if !ok {
		return false, fmt.Errorf("transaction %s: %w", hash, model.ErrNotFound)
	}
	if tx.Tagged() {
		return false, nil
	}

	tx.Patterns = patterns
	if err = r.insertTransactions(ctx, []model.Transaction{tx}); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) transactionsByHashes(ctx context.Context, hashes []string) (found map[string]model.Transaction, err error) {
	found = make(map[string]model.Transaction, len(hashes))
	if len(hashes) == 0 {
		return found, nil
	}

	query := `
SELECT` + transactionColumns + `
FROM graph_transactions FINAL
WHERE hash IN (?)`

	rows, err := r.conn.Query(ctx, query, hashes)
	if err != nil {
		return nil, fmt.Errorf("query transactions by hash: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			r.skipRow("transaction", "", scanErr)
			continue
		}
		found[tx.Hash] = tx
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return found, nil
}

func (r *Repository) insertTransactions(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO graph_transactions (` + transactionColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	updatedAt := r.now()
	for _, tx := range txs {
		if err = batch.Append(
			tx.ID,
			tx.Hash,
			toColumnTime(tx.Timestamp),
			nonNilStrings(tx.Inputs),
			nonNilStrings(tx.Outputs),
			int64(tx.Total),
			int64(tx.Fee),
			string(tx.State),
			tx.BlockHash,
			tx.BlockHeight,
			patternColumn(tx.Patterns),
			updatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

func scanTransaction(rows driver.Rows) (model.Transaction, error) {
	var (
		tx                   model.Transaction
		total, fee           int64
		state                string
		patterns             []string
		timestamp, updatedAt time.Time
	)
	if err := rows.Scan(
		&tx.ID,
		&tx.Hash,
		&timestamp,
		&tx.Inputs,
		&tx.Outputs,
		&total,
		&fee,
		&state,
		&tx.BlockHash,
		&tx.BlockHeight,
		&patterns,
		&updatedAt,
	); err != nil {
		return model.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	tx.Timestamp = fromColumnTime(timestamp)
	tx.Total = btcutil.Amount(total)
	tx.Fee = btcutil.Amount(fee)
	tx.State = model.TxState(state)
	for _, p := range patterns {
		tx.Patterns = append(tx.Patterns, model.Pattern(p))
	}
	return tx, nil
}

func patternColumn(patterns []model.Pattern) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, string(p))
	}
	return out
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
