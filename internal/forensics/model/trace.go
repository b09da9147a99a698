package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
)

// Direction of a fund-flow trace.
type Direction string

const (
	DirectionOrigin      Direction = "origen"
	DirectionDestination Direction = "destino"
)

// Connection is one hop discovered by a trace.
type Connection struct {
	Level     int            `json:"level"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	Amount    btcutil.Amount `json:"amount"`
	TxHash    string         `json:"tx_hash"`
	State     TxState        `json:"state"`
	Timestamp time.Time      `json:"timestamp"`
}

// TraceKey identifies a cached trace result.
type TraceKey struct {
	Seed       string
	Direction  Direction
	WindowDays int
	MaxDepth   int
}

// TraceResult is an immutable trace run.
type TraceResult struct {
	ID          uuid.UUID
	Direction   Direction
	Seed        string
	WindowDays  int
	MaxDepth    int
	Connections []Connection
	Total       int
	CreatedAt   time.Time
}

// Key returns the cache key the result is stored under.
func (r TraceResult) Key() TraceKey {
	return TraceKey{Seed: r.Seed, Direction: r.Direction, WindowDays: r.WindowDays, MaxDepth: r.MaxDepth}
}
