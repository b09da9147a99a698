package model

import (
	"time"

	"github.com/google/uuid"
)

// ClusterAlgorithm names the strategy that produced a cluster snapshot.
type ClusterAlgorithm string

const (
	ClusterByLabel        ClusterAlgorithm = "label"
	ClusterByCoOccurrence ClusterAlgorithm = "co-occurrence"
)

// Cluster is one detection snapshot of addresses believed to share an owner.
type Cluster struct {
	ID             uuid.UUID
	BaseAddress    string
	Members        []string
	Label          string
	WalletID       string
	Algorithm      ClusterAlgorithm
	RiskType       RiskBand
	Description    string
	UpdatedToBlock uint64
	CreatedAt      time.Time
}

// WalletLabel is the answer of the external wallet-clustering service.
type WalletLabel struct {
	Found          bool
	Label          string
	WalletID       string
	UpdatedToBlock uint64
}
