package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
)

// Address is the locally cached financial state of a blockchain address.
type Address struct {
	ID                 uuid.UUID
	Address            string
	Balance            btcutil.Amount
	UnconfirmedBalance btcutil.Amount
	FinalBalance       btcutil.Amount
	TotalReceived      btcutil.Amount
	TotalSent          btcutil.Amount
	TxCount            uint64
	UnconfirmedTxCount uint64
	FinalTxCount       uint64
	FirstSeen          time.Time
	LastSeen           time.Time
	BlockHeights       []uint64
	UpdatedAt          time.Time
}

// AddressSnapshot is what the chain-data provider returns for one address lookup.
type AddressSnapshot struct {
	Address      Address
	Transactions []Transaction
}

// RiskProfile is the persisted risk snapshot of an address.
type RiskProfile struct {
	Address   string
	Band      RiskBand
	Total     float64
	Factors   RiskFactors
	UpdatedAt time.Time
}
