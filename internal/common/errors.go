// Package common defines shared sentinel errors and small helpers used
// across the journal client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Validation errors (local, pre-flight, recoverable by re-prompting).
	ErrInvalidInput = errors.New("invalid input")

	// Signup-specific errors.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is deliberately ambiguous: it covers an unknown
	// username, a wrong password, and a corrupt credential record alike, so
	// login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrCryptoUnavailable means the runtime provides no secure key
	// derivation primitive. Signup must be blocked entirely; login is
	// blocked for salted accounts.
	ErrCryptoUnavailable = errors.New("secure key derivation unavailable")

	// ErrPersistence wraps storage write failures. Reads never produce it:
	// a failed read degrades to "no data".
	ErrPersistence = errors.New("persistence error")
)
