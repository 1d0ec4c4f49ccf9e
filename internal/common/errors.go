// Package common defines shared constants and sentinel errors used across
// client layers of GoFinances. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Authentication outcomes. Cancellation is a routine result of an
	// interactive flow, not a fault.
	ErrAuthenticationCancelled = errors.New("authentication cancelled")
	ErrAuthenticationFailed    = errors.New("authentication failed")

	// ErrProviderNotConfigured is always reported together with
	// ErrAuthenticationFailed.
	ErrProviderNotConfigured = errors.New("provider not configured")

	// Storage errors.
	ErrStorageFailure         = errors.New("storage failure")
	ErrMalformedSessionRecord = errors.New("malformed session record")

	// Ledger errors.
	ErrNoUser             = errors.New("no signed-in user")
	ErrInvalidTransaction = errors.New("invalid transaction")
)
