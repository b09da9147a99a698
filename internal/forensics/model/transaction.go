package model

import (
	"slices"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
)

// TxState is the settlement state of a transaction.
type TxState string

const (
	TxConfirmed TxState = "confirmada"
	TxPending   TxState = "pendiente"
)

// Transaction is a graph edge set: ordered input and output address identities.
type Transaction struct {
	ID          uuid.UUID
	Hash        string
	Timestamp   time.Time
	Inputs      []string
	Outputs     []string
	Total       btcutil.Amount
	Fee         btcutil.Amount
	State       TxState
	BlockHash   string
	BlockHeight uint64
	Patterns    []Pattern
}

// HasInput reports whether address funds the transaction.
func (t Transaction) HasInput(address string) bool {
	return slices.Contains(t.Inputs, address)
}

// HasOutput reports whether address receives from the transaction.
func (t Transaction) HasOutput(address string) bool {
	return slices.Contains(t.Outputs, address)
}

// Involves reports whether address appears on either side.
func (t Transaction) Involves(address string) bool {
	return t.HasInput(address) || t.HasOutput(address)
}

// Confirmed reports whether the transaction is settled.
func (t Transaction) Confirmed() bool {
	return t.State == TxConfirmed
}

// SortTransactions orders transactions by timestamp, then hash.
func SortTransactions(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		switch {
		case a.Hash < b.Hash:
			return -1
		case a.Hash > b.Hash:
			return 1
		}
		return 0
	})
}

// LastActivity returns the most recent transaction timestamp, or zero time.
func LastActivity(txs []Transaction) time.Time {
	var last time.Time
	for _, tx := range txs {
		if tx.Timestamp.After(last) {
			last = tx.Timestamp
		}
	}
	return last
}

// UniqueAddresses drops empty and repeated entries, keeping first occurrence order.
func UniqueAddresses(addresses []string) []string {
	out := make([]string, 0, len(addresses))
	seen := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
