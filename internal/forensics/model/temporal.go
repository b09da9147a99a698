package model

import (
	"time"

	"github.com/google/uuid"
)

// HourSeries counts transactions per hour bucket ("2006-01-02 15:00", UTC).
type HourSeries map[string]int

// CorrelatedPair is a pair of addresses whose activity hours overlap.
type CorrelatedPair struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

// TemporalCorrelation is one immutable correlation run.
type TemporalCorrelation struct {
	ID                uuid.UUID
	Addresses         []string
	Window            string
	Series            map[string]HourSeries
	Pairs             []CorrelatedPair
	TotalTransactions int
	CreatedAt         time.Time
}
