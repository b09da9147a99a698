package model

import (
	"strings"
	"time"
)

// Report is a scam report filed against an address in the external feed.
type Report struct {
	ID        string
	Address   string
	Category  string
	CreatedAt time.Time
	Trusted   bool
	Domains   []string
	FetchedAt time.Time
}

// RelationKind names what two related addresses share.
type RelationKind string

const (
	RelationSharedDomain   RelationKind = "dominio_compartido"
	RelationSharedWallet   RelationKind = "wallet_compartida"
	RelationSharedCategory RelationKind = "categoria_compartida"
)

// Relation links two addresses through shared metadata.
type Relation struct {
	AddressA  string
	AddressB  string
	Kind      RelationKind
	Value     string
	CreatedAt time.Time
}

// NewRelation orders the pair so that equal relations share one key.
func NewRelation(a, b string, kind RelationKind, value string, at time.Time) Relation {
	if b < a {
		a, b = b, a
	}
	return Relation{AddressA: a, AddressB: b, Kind: kind, Value: value, CreatedAt: at}
}

// NormalizeCategory maps a feed category such as "fake returns" to "FAKE_RETURNS".
func NormalizeCategory(category string) string {
	fields := strings.FieldsFunc(strings.ToUpper(category), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	return strings.Join(fields, "_")
}
