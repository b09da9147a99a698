package model

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrNotFound is returned when an entity is absent from the store and every external lookup.
var ErrNotFound = errors.New("not found")

// ValidationError reports input or a stored record that does not fit its entity shape.
type ValidationError struct {
	Entity string
	Key    string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Entity, e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ValidateAddress checks that address decodes for the given network.
func ValidateAddress(address string, params *chaincfg.Params) error {
	if address == "" {
		return &ValidationError{Entity: "address", Err: errors.New("empty")}
	}
	decoded, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return &ValidationError{Entity: "address", Key: address, Err: err}
	}
	if !decoded.IsForNet(params) {
		return &ValidationError{Entity: "address", Key: address, Err: fmt.Errorf("not a %s address", params.Name)}
	}
	return nil
}

// ValidateHash checks that hash is a hex encoded 32-byte hash.
func ValidateHash(hash string) error {
	if len(hash) != chainhash.MaxHashStringSize {
		return &ValidationError{Entity: "hash", Key: hash, Err: fmt.Errorf("want %d hex characters", chainhash.MaxHashStringSize)}
	}
	if _, err := chainhash.NewHashFromStr(hash); err != nil {
		return &ValidationError{Entity: "hash", Key: hash, Err: err}
	}
	return nil
}
