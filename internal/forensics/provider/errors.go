// Package provider holds what every external data source client shares:
// the error taxonomy, the bounded retry policy, credential rotation and pacing.
package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means every attempt against the provider failed.
	ErrUnavailable = errors.New("provider unavailable")
	// ErrRateLimited is an explicit rate-limit answer.
	ErrRateLimited = errors.New("provider rate limited")
	// ErrChallengeDetected means the provider served a bot-interdiction page instead of data.
	ErrChallengeDetected = errors.New("provider challenge detected")
	// ErrUnconfigured means a required credential is missing.
	ErrUnconfigured = errors.New("provider credentials not configured")
)

// APIError is an answer the provider will keep giving; retrying does not help.
type APIError struct {
	Provider string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.Status, e.Message)
}

// Degradable reports whether a caller should fall back to stored data instead of failing.
func Degradable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrRateLimited)
}
