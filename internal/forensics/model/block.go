package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
)

// Block holds block metadata; immutable once stored.
type Block struct {
	ID        uuid.UUID
	Hash      string
	Height    uint64
	Timestamp time.Time
	Fees      btcutil.Amount
	Volume    btcutil.Amount
}
